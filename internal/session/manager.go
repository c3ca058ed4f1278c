// Package session keeps a set of independent calculators, one per client
// session, and serialises the button presses sent to each of them.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned for unknown or closed session IDs
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions is returned by Create when the session limit is reached
	ErrTooManySessions = errors.New("too many sessions")
)

// Snapshot is what a client needs to redraw the calculator after a press
type Snapshot struct {
	Display    string
	ClearLabel string
	Flashes    int
}

type session struct {
	mu      sync.Mutex
	calc    *calculator.Calculator
	flashes int
}

func (s *session) snapshot() Snapshot {
	return Snapshot{
		Display:    s.calc.Display(),
		ClearLabel: s.calc.ClearLabel(),
		Flashes:    s.flashes,
	}
}

// Manager manages the calculator sessions
type Manager struct {
	maxSessions int
	sessions    map[string]*session
	mu          sync.RWMutex
}

// NewManager creates a manager that holds at most maxSessions sessions.
// A non-positive limit means no limit.
func NewManager(maxSessions int) *Manager {
	return &Manager{
		maxSessions: maxSessions,
		sessions:    make(map[string]*session),
	}
}

// Create starts a new calculator session and returns its ID
func (m *Manager) Create() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return "", fmt.Errorf("%w: limit is %d", ErrTooManySessions, m.maxSessions)
	}

	id := uuid.NewString()
	s := &session{}
	// The flash callback runs while s.mu is held by Do, so it only counts.
	s.calc = calculator.New(func() { s.flashes++ })
	m.sessions[id] = s

	slog.Debug("Created calculator session", "session_id", id, "session_count", len(m.sessions))
	return id, nil
}

func (m *Manager) get(id string) (*session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid session ID %q", ErrSessionNotFound, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Do runs press against the session's calculator and returns the resulting
// display state. The snapshot is valid even when press returns an error.
func (m *Manager) Do(id string, press func(c *calculator.Calculator) error) (Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = press(s.calc)
	return s.snapshot(), err
}

// Snapshot returns the display state of a session without pressing anything
func (m *Manager) Snapshot(id string) (Snapshot, error) {
	return m.Do(id, func(*calculator.Calculator) error { return nil })
}

// Close discards a session
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)

	slog.Debug("Closed calculator session", "session_id", id, "session_count", len(m.sessions))
	return nil
}

// Len returns the number of open sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
