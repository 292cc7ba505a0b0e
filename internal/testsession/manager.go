package testsession

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
)

// Manager is the registry of active engines. A single 1 Hz ticker drives
// every engine's countdown; completed sessions are dropped from the registry.
type Manager struct {
	mu      sync.RWMutex
	engines map[uuid.UUID]*Engine
	clock   Clock
}

func NewManager(clock Clock) *Manager {
	if clock == nil {
		clock = SystemClock
	}
	return &Manager{
		engines: make(map[uuid.UUID]*Engine),
		clock:   clock,
	}
}

// Start runs the tick loop until the context is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go m.run(ctx)
}

func (m *Manager) run(ctx context.Context) {
	log := config.WithContext(ctx)
	log.Info("session ticker started")

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("session ticker stopped")
			return
		case <-ticker.C:
			m.TickAll(ctx)
		}
	}
}

// TickAll advances every registered engine by one second, removing the ones
// that complete. Exposed so tests can drive time deterministically.
func (m *Manager) TickAll(ctx context.Context) {
	m.mu.RLock()
	engines := make([]*Engine, 0, len(m.engines))
	for _, e := range m.engines {
		engines = append(engines, e)
	}
	m.mu.RUnlock()

	for _, e := range engines {
		if done := e.Tick(ctx); done {
			config.WithContext(ctx).
				WithField("session_id", e.SessionID()).
				Info("session completed on timer expiry")
			m.Remove(e.SessionID())
		}
	}
}

func (m *Manager) Register(e *Engine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engines[e.SessionID()] = e
}

func (m *Manager) Get(sessionID uuid.UUID) (*Engine, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.engines[sessionID]
	return e, ok
}

func (m *Manager) Remove(sessionID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.engines, sessionID)
}
