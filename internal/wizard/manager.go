package wizard

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"lateral-intake/internal/store"
)

// Manager owns one Container per editing session. Containers are
// constructor-built and session-scoped so concurrent sessions never share
// mutable wizard state.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*managedContainer
	store    store.ApplicationStore
	log      *zap.Logger
}

type managedContainer struct {
	container *Container
	lastUsed  time.Time
}

// NewManager builds a Manager that hands out containers backed by st.
func NewManager(st store.ApplicationStore, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*managedContainer),
		store:    st,
		log:      log,
	}
}

// GetOrCreate returns the container for sessionID, creating one when the
// session is new.
func (m *Manager) GetOrCreate(sessionID string) *Container {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mc, ok := m.sessions[sessionID]; ok {
		mc.lastUsed = time.Now()
		return mc.container
	}
	mc := &managedContainer{
		container: NewContainer(m.store, m.log),
		lastUsed:  time.Now(),
	}
	m.sessions[sessionID] = mc
	return mc.container
}

// Get returns the container for an existing session. Takes the write lock:
// the idle timestamp is updated on every hit.
func (m *Manager) Get(sessionID string) (*Container, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mc, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}
	mc.lastUsed = time.Now()
	return mc.container, nil
}

// Release drops the container for sessionID. Unsaved state is discarded.
func (m *Manager) Release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CleanupExpired drops sessions idle longer than maxAge and returns how
// many were removed.
func (m *Manager) CleanupExpired(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, mc := range m.sessions {
		if now.Sub(mc.lastUsed) > maxAge {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info("expired wizard sessions removed", zap.Int("count", removed))
	}
	return removed
}
