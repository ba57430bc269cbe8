package main

import (
	"sync"
	"time"
)

const maxSessions = 100

// SessionIdleTimeout is how long an empty session lingers before cleanup.
// A variable so tests can shorten it.
var SessionIdleTimeout = 30 * time.Second

// Session represents one joinable match
type Session struct {
	ID      string
	Name    string
	Game    *Game
	emptyAt time.Time
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager creates a new SessionManager
func NewSessionManager() *SessionManager {
	sm := &SessionManager{
		sessions: make(map[string]*Session),
	}
	go sm.reapLoop()
	return sm
}

// CreateSession creates a new match session. Returns nil when the session
// limit is reached or the mode is invalid (the one fail-fast config error).
func (sm *SessionManager) CreateSession(name string, mode GameMode, db *DB, analytics *Analytics) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil
	}
	game, err := NewGame(mode, db, analytics)
	if err != nil {
		return nil
	}
	sess := &Session{
		ID:      GenerateUUID(),
		Name:    name,
		Game:    game,
		emptyAt: time.Now(),
	}
	sm.sessions[sess.ID] = sess
	go game.Run()
	if analytics != nil {
		analytics.Track(EvtMatchStart, 0, sess.ID, "")
	}
	return sess
}

// GetSession returns a session by ID, nil if it does not exist
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// MarkActive resets the idle clock for a session
func (sm *SessionManager) MarkActive(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sess, ok := sm.sessions[id]; ok {
		sess.emptyAt = time.Time{}
	}
}

// RemovePlayer removes a player from a session and starts the idle clock
// when the last human leaves
func (sm *SessionManager) RemovePlayer(sessionID, playerID string) {
	sm.mu.RLock()
	sess, ok := sm.sessions[sessionID]
	sm.mu.RUnlock()
	if !ok {
		return
	}
	sess.Game.RemovePlayer(playerID)

	if sess.Game.PlayerCount() == 0 {
		sm.mu.Lock()
		sess.emptyAt = time.Now()
		sm.mu.Unlock()
	}
}

// ListSessions returns info about all active sessions
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		list = append(list, SessionInfo{
			ID:      sess.ID,
			Name:    sess.Name,
			Mode:    int(sess.Game.Mode()),
			Players: sess.Game.PlayerCount(),
		})
	}
	return list
}

// reapLoop stops and deletes sessions that have sat empty past the timeout
func (sm *SessionManager) reapLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		sm.mu.Lock()
		for id, sess := range sm.sessions {
			if !sess.emptyAt.IsZero() && sess.Game.PlayerCount() == 0 &&
				now.Sub(sess.emptyAt) > SessionIdleTimeout {
				sess.Game.Stop()
				delete(sm.sessions, id)
			}
		}
		sm.mu.Unlock()
	}
}
