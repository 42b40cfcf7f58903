package store

import (
	"context"
	"sync"
)

type inMemory struct {
	mu      sync.RWMutex
	storage map[string]string
}

func NewMemoryCache() ResultCache {
	return &inMemory{}
}

func (m *inMemory) Get(_ context.Context, tool, args string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.storage == nil {
		return "", false
	}
	res, ok := m.storage[Key(tool, args)]
	return res, ok
}

func (m *inMemory) Set(_ context.Context, tool, args, result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage == nil {
		// create on first use
		m.storage = make(map[string]string)
	}
	m.storage[Key(tool, args)] = result
	return nil
}
