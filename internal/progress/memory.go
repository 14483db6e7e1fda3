package progress

import (
	"context"
	"sync"
)

// MemoryStore keeps snapshots in process memory. It backs tests and any
// deployment that is fine losing progress on restart.
type MemoryStore struct {
	mu        sync.Mutex
	snapshots map[uint]Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[uint]Snapshot)}
}

func (store *MemoryStore) Save(_ context.Context, userID uint, snapshot Snapshot) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	snapshot.Data = snapshot.Data.Clone()
	store.snapshots[userID] = snapshot
	return nil
}

func (store *MemoryStore) Load(_ context.Context, userID uint) (Snapshot, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	snapshot, ok := store.snapshots[userID]
	if !ok {
		return Snapshot{}, ErrNoSnapshot
	}
	snapshot.Data = snapshot.Data.Clone()
	return snapshot, nil
}

func (store *MemoryStore) Clear(_ context.Context, userID uint) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.snapshots, userID)
	return nil
}
