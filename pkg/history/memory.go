package history

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process Store. Safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]string)}
}

func (m *Memory) Append(ctx context.Context, sessionID, line string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[sessionID] = append(m.data[sessionID], line)
	return nil
}

func (m *Memory) Lines(ctx context.Context, sessionID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines, ok := m.data[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return slices.Clone(lines), nil
}

func (m *Memory) Sessions(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (m *Memory) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(m.data, sessionID)
	return nil
}
