// Package cache stores the last reading per user, best-effort. Nothing in
// the primary flow depends on it: a lost or raced entry costs the user a
// "/ultima" answer, never a reading.
package cache

import (
	"context"
	"sync"
)

// Memory is the in-process implementation, last-write-wins.
type Memory struct {
	mu   sync.Mutex
	last map[int64]string
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{last: make(map[int64]string)}
}

func (m *Memory) Store(_ context.Context, userID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last[userID] = text
	return nil
}

func (m *Memory) Last(_ context.Context, userID int64) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.last[userID]
	return text, ok, nil
}
