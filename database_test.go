package main

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreatePlayerAndStats(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreatePlayer("brawler1", "b@example.com", "hash")
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	stats, err := db.GetStats(id)
	if err != nil || stats == nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Kills != 0 || stats.Level != 1 {
		t.Errorf("fresh stats should be zeroed at level 1, got %+v", stats)
	}

	p, err := db.GetPlayerByUsername("brawler1")
	if err != nil || p == nil {
		t.Fatalf("GetPlayerByUsername: %v", err)
	}
	if p.ID != id {
		t.Error("looked-up player ID mismatch")
	}

	exists, _ := db.UsernameExists("brawler1")
	if !exists {
		t.Error("username should exist")
	}
	if missing, _ := db.GetPlayerByUsername("nobody"); missing != nil {
		t.Error("unknown username should return nil, not error")
	}
}

func TestBumpStatsAccumulates(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("acc", "", "h")

	if _, _, err := db.BumpStats(id, 5, 2, true, 120, 8, 1); err != nil {
		t.Fatalf("BumpStats: %v", err)
	}
	if _, _, err := db.BumpStats(id, 3, 4, false, 90, 0, 0); err != nil {
		t.Fatalf("BumpStats: %v", err)
	}

	s, _ := db.GetStats(id)
	if s.Kills != 8 || s.Deaths != 6 || s.Wins != 1 || s.Losses != 1 {
		t.Errorf("stats wrong after two matches: %+v", s)
	}
	if s.Gems != 8 || s.Goals != 1 {
		t.Errorf("gem/goal totals wrong: %+v", s)
	}
	wantXP := 5*xpPerKill + 8*xpPerGem + 1*xpPerGoal + xpWinBonus + 3*xpPerKill
	if s.XP != wantXP {
		t.Errorf("expected %d XP, got %d", wantXP, s.XP)
	}
	if s.Level != CalculateLevel(wantXP) {
		t.Errorf("level should match XP total, got %d", s.Level)
	}
}

func TestRecordMatchAndHistory(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("hist", "", "h")

	matchID, err := db.RecordMatch(int(ModeBrawlBall), 95.5, TeamRed)
	if err != nil {
		t.Fatalf("RecordMatch: %v", err)
	}
	if err := db.RecordMatchPlayer(matchID, id, TeamRed, 4, 1, 0, true); err != nil {
		t.Fatalf("RecordMatchPlayer: %v", err)
	}

	hist, err := db.GetMatchHistory(id, 10)
	if err != nil {
		t.Fatalf("GetMatchHistory: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("expected 1 match, got %d", len(hist))
	}
	if hist[0].Kills != 4 || !hist[0].Won {
		t.Errorf("history row wrong: %+v", hist[0])
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	db := openTestDB(t)
	a, _ := db.CreatePlayer("alpha", "", "h")
	b, _ := db.CreatePlayer("beta", "", "h")
	db.BumpStats(a, 10, 0, true, 60, 0, 0)
	db.BumpStats(b, 2, 0, false, 60, 0, 0)

	board, err := db.GetLeaderboard("kills", 10)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(board))
	}
	if board[0].Username != "alpha" || board[0].Rank != 1 {
		t.Errorf("expected alpha on top, got %+v", board[0])
	}
}

func TestAchievementUnlockIdempotent(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("ach", "", "h")

	newly, err := db.UnlockAchievement(id, "first_blood")
	if err != nil || !newly {
		t.Fatalf("first unlock should report newly=true, got %v %v", newly, err)
	}
	newly, err = db.UnlockAchievement(id, "first_blood")
	if err != nil || newly {
		t.Fatalf("second unlock should report newly=false, got %v %v", newly, err)
	}

	list, _ := db.GetAchievements(id)
	if len(list) != 1 || list[0] != "first_blood" {
		t.Errorf("achievement list wrong: %v", list)
	}
}

func TestCheckAchievementsUnlocks(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("win", "", "h")
	db.BumpStats(id, 12, 0, true, 60, 0, 0)

	unlocked := CheckAchievements(db, id, 12, 0, true)
	ids := map[string]bool{}
	for _, a := range unlocked {
		ids[a.ID] = true
	}
	for _, want := range []string{"first_blood", "rampage", "flawless"} {
		if !ids[want] {
			t.Errorf("expected %s to unlock, got %v", want, unlocked)
		}
	}

	// Already unlocked: nothing new the second time around
	if again := CheckAchievements(db, id, 12, 0, true); len(again) != 0 {
		t.Errorf("repeat check should unlock nothing, got %v", again)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	if got := db.GetSetting("missing"); got != "" {
		t.Errorf("unset key should return empty, got %q", got)
	}
	if err := db.SetSetting("k", "v1"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := db.SetSetting("k", "v2"); err != nil {
		t.Fatalf("SetSetting overwrite: %v", err)
	}
	if got := db.GetSetting("k"); got != "v2" {
		t.Errorf("expected v2, got %q", got)
	}
}

func TestXPLevelCurve(t *testing.T) {
	if XPForLevel(1) != 0 {
		t.Error("level 1 requires 0 XP")
	}
	if XPForLevel(2) != 100 {
		t.Errorf("level 2 requires 100 XP, got %d", XPForLevel(2))
	}
	if CalculateLevel(0) != 1 {
		t.Error("0 XP is level 1")
	}
	if CalculateLevel(100) != 2 {
		t.Error("100 XP is level 2")
	}
	if CalculateLevel(99) != 1 {
		t.Error("99 XP is still level 1")
	}
}
