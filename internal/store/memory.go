package store

import "sync"

// Memory implements [Store] in process memory. Used in tests and anywhere a
// throwaway profile is acceptable.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: map[string][]byte{}}
}

// Read returns the payload for key, or (nil, nil) when no record exists.
func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, nil
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Write replaces the payload for key.
func (m *Memory) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	m.records[key] = cp
	return nil
}
