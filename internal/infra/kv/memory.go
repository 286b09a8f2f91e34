package kv

import (
	"context"
	"strconv"
	"sync"
)

type MemoryBackend struct {
	mu      sync.Mutex
	records map[string]Record
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string]Record)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[key]
	if !ok {
		return Record{}, notFound(key)
	}
	return Record{Value: append([]byte(nil), rec.Value...), Revision: rec.Revision}, nil
}

func (m *MemoryBackend) Put(_ context.Context, key string, value []byte, expected int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.records[key].Revision
	if !admits(expected, current) {
		return 0, conflict(key, expected, current)
	}
	next := current + 1
	m.records[key] = Record{Value: append([]byte(nil), value...), Revision: next}
	return next, nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[key]
	if !ok {
		return nil
	}
	m.records[key] = Record{Revision: rec.Revision + 1}
	return nil
}

func (m *MemoryBackend) Close() error { return nil }

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
