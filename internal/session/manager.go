package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/youthopia/engine/internal/domain"
	"github.com/youthopia/engine/internal/event"
	"github.com/youthopia/engine/internal/logger"
	"github.com/youthopia/engine/internal/registry"
)

// SnapshotStore persists session snapshots between runs.
type SnapshotStore interface {
	Put(id string, v any) error
	Get(id string, out any) (bool, error)
	Delete(id string) error
}

// Manager owns the live sessions and their persistence.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store    SnapshotStore
	registry registry.Lookup
	eventBus event.Bus
	cfg      Config
}

// NewManager creates a session manager. A nil store disables persistence.
func NewManager(store SnapshotStore, reg registry.Lookup, bus event.Bus, cfg Config) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		registry: reg,
		eventBus: bus,
		cfg:      cfg,
	}
}

// Create starts a new session for userName.
func (m *Manager) Create(userName string) *Session {
	s := New(userName, m.registry, m.eventBus, m.cfg)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	return s
}

// Get returns a live session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

// Close drops a live session. The persisted snapshot, if any, survives.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Save persists the session's current snapshot.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if m.store == nil {
		return fmt.Errorf("save session %s: no store configured", s.ID())
	}

	snap := s.Snapshot()
	if err := m.store.Put(s.ID(), snap); err != nil {
		return fmt.Errorf("save session %s: %w", s.ID(), err)
	}

	logger.FromContext(ctx).Info("Session snapshot saved",
		"balance", snap.Balance,
		"registered_events", len(snap.RegisteredEvents),
		"gate_state", snap.GateState)
	return nil
}

// Restore rebuilds a session from its persisted snapshot and makes it live
// again. A pending reward reopens its challenge with answers cleared.
func (m *Manager) Restore(ctx context.Context, id string) (*Session, error) {
	if m.store == nil {
		return nil, fmt.Errorf("restore session %s: no store configured", id)
	}

	var snap Snapshot
	found, err := m.store.Get(id, &snap)
	if err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("restore session %s: %w", id, domain.ErrSessionNotFound)
	}

	s := restored(snap.SessionID, snap.User, snap.CreatedAt, snap.Balance,
		snap.RegisteredEvents, m.registry, m.eventBus, m.cfg)

	pendingPrize := 0
	if snap.GateState == domain.RewardStateAwaitingGate {
		pendingPrize = snap.PendingPrize
	}
	if err := s.game.Restore(snap.ConsumedDraws, pendingPrize, snap.ChallengeQuestionIDs); err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	logger.FromContext(ctx).Info("Session restored",
		"balance", snap.Balance,
		"gate_state", s.game.State())
	return s, nil
}
