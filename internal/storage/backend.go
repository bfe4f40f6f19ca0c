// Package storage persists each entity type's full record sequence as one
// JSON document in a named slot, the way the app's data lived in browser
// local storage. Reads and writes never fail from the caller's point of
// view: storage trouble is logged and degraded to empty results so the
// tracker stays usable with whatever data is reachable.
package storage

import "sync"

// Backend is the persistence port. Get returns the raw document for a slot
// and whether the slot exists. Implementations are not required to be safe
// for concurrent use; the app has a single writer.
type Backend interface {
	Get(slot string) ([]byte, bool, error)
	Set(slot string, data []byte) error
	Close() error
}

// Memory is an in-process Backend used by tests and throwaway runs.
type Memory struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Get(slot string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.slots[slot]
	return data, ok, nil
}

func (m *Memory) Set(slot string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) Close() error { return nil }
