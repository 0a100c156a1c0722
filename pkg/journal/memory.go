package journal

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process Journal.
type Memory struct {
	responses []string
	errors    []string
	mu        sync.RWMutex
}

// NewMemory creates an empty in-memory journal.
func NewMemory() *Memory {
	return &Memory{}
}

// AppendResponse implements Journal.
func (m *Memory) AppendResponse(_ context.Context, raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, raw)
	return nil
}

// AppendError implements Journal.
func (m *Memory) AppendError(_ context.Context, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
	return nil
}

// Responses implements Journal. The returned slice is a copy.
func (m *Memory) Responses(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.responses), nil
}

// Errors implements Journal. The returned slice is a copy.
func (m *Memory) Errors(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.errors), nil
}

var _ Journal = (*Memory)(nil)
