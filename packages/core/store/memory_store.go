package store

import (
	"context"
	"sync"
	"time"

	"gallera-api/packages/core/tournament"
)

// MemoryStore keeps the session in process memory. It backs tests and runs
// without a database.
type MemoryStore struct {
	mu        sync.RWMutex
	state     *tournament.State
	snapshots []memorySnapshot
	nextID    uint
	saves     int
}

type memorySnapshot struct {
	Snapshot
	state tournament.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (tournament.State, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == nil {
		return tournament.State{}, false, nil
	}
	return m.state.Clone(), true, nil
}

func (m *MemoryStore) Save(_ context.Context, state tournament.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := state.Clone()
	m.state = &s
	m.saves++
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = nil
	return nil
}

// Saves reports how many times the session was written.
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func (m *MemoryStore) CreateSnapshot(_ context.Context, state tournament.State) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	snap := Snapshot{
		ID:         m.nextID,
		Phase:      string(state.Phase),
		CurrentDay: state.CurrentDay,
		CreatedAt:  time.Now(),
	}
	m.snapshots = append(m.snapshots, memorySnapshot{Snapshot: snap, state: state.Clone()})
	return snap, nil
}

func (m *MemoryStore) ListSnapshots(_ context.Context) ([]Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Snapshot, 0, len(m.snapshots))
	for i := len(m.snapshots) - 1; i >= 0; i-- {
		out = append(out, m.snapshots[i].Snapshot)
	}
	return out, nil
}

func (m *MemoryStore) PruneSnapshots(_ context.Context, keep int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	if len(m.snapshots) <= keep {
		return 0, nil
	}
	removed := len(m.snapshots) - keep
	m.snapshots = append([]memorySnapshot{}, m.snapshots[removed:]...)
	return int64(removed), nil
}
