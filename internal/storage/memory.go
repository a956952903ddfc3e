package storage

import (
	"slices"
	"strconv"
	"sync"
	"time"
)

// Memory is an in-process store used when no database is available. It keeps
// the same contract as Store and forgets everything when the process exits.
type Memory struct {
	mu       sync.Mutex
	kv       map[string]string
	scores   []ScoreEntry
	sessions []Session
	nextID   int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{kv: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.kv[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

// SetMax stores value under key unless the stored integer is already greater
// or equal, and returns the value held after the write. A malformed stored
// value is replaced.
func (m *Memory) SetMax(key string, value int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, err := strconv.Atoi(m.kv[key]); err == nil && cur >= value {
		return cur, nil
	}
	m.kv[key] = strconv.Itoa(value)
	return value, nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kv, key)
	return nil
}

// SaveScore records a new score for the given game.
func (m *Memory) SaveScore(gameID string, score int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.scores = append(m.scores, ScoreEntry{
		ID:        m.nextID,
		GameID:    gameID,
		Score:     score,
		CreatedAt: time.Now(),
	})
	return m.nextID, nil
}

// TopScores returns the best scores of a game, highest first.
func (m *Memory) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []ScoreEntry
	for _, e := range m.scores {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	slices.SortStableFunc(entries, func(a, b ScoreEntry) int {
		return b.Score - a.Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// SaveSession records a finished play session, replacing one with the same ID.
func (m *Memory) SaveSession(session Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sessions {
		if m.sessions[i].ID == session.ID {
			m.sessions[i] = session
			return nil
		}
	}
	m.sessions = append(m.sessions, session)
	return nil
}

// RecentSessions returns the latest sessions of a game, most recent first.
func (m *Memory) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Session
	for i := len(m.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if m.sessions[i].GameID == gameID {
			out = append(out, m.sessions[i])
		}
	}
	return out, nil
}
