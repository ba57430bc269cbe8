package main

import "testing"

func TestSessionManagerCreateAndGet(t *testing.T) {
	sm := NewSessionManager()
	sess := sm.CreateSession("Test Arena", ModeGemGrab, nil, nil)
	if sess == nil {
		t.Fatal("session creation failed")
	}
	defer sess.Game.Stop()

	if got := sm.GetSession(sess.ID); got != sess {
		t.Error("GetSession should return the created session")
	}
	if sm.GetSession("missing") != nil {
		t.Error("unknown session ID should return nil")
	}
}

func TestSessionManagerRejectsInvalidMode(t *testing.T) {
	sm := NewSessionManager()
	if sm.CreateSession("Bad", GameMode(42), nil, nil) != nil {
		t.Error("invalid mode should not create a session")
	}
}

func TestSessionManagerListSessions(t *testing.T) {
	sm := NewSessionManager()
	s1 := sm.CreateSession("One", ModeGemGrab, nil, nil)
	s2 := sm.CreateSession("Two", ModeBrawlBall, nil, nil)
	defer s1.Game.Stop()
	defer s2.Game.Stop()

	list := sm.ListSessions()
	if len(list) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(list))
	}
	modes := map[int]bool{}
	for _, info := range list {
		modes[info.Mode] = true
	}
	if !modes[int(ModeGemGrab)] || !modes[int(ModeBrawlBall)] {
		t.Error("list should carry each session's mode")
	}
}

func TestSessionManagerRemovePlayer(t *testing.T) {
	sm := NewSessionManager()
	sess := sm.CreateSession("Arena", ModeGemGrab, nil, nil)
	defer sess.Game.Stop()

	p := sess.Game.AddPlayer("A", 0)
	sm.MarkActive(sess.ID)
	sm.RemovePlayer(sess.ID, p.ID)

	if sess.Game.PlayerCount() != 0 {
		t.Error("player should be removed from the game")
	}
	if sess.emptyAt.IsZero() {
		t.Error("idle clock should start when the last human leaves")
	}
}
