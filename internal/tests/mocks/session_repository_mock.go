package mocks

import (
	"context"
	"sync"
)

// SessionRepositoryMock falls back to an in-memory map when a Func is unset.
type SessionRepositoryMock struct {
	LoadFunc   func(ctx context.Context, sessionID string) ([]byte, bool, error)
	SaveFunc   func(ctx context.Context, sessionID string, data []byte) error
	DeleteFunc func(ctx context.Context, sessionID string) error

	mu    sync.Mutex
	data  map[string][]byte
	Saves int
}

func (m *SessionRepositoryMock) Load(ctx context.Context, sessionID string) ([]byte, bool, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[sessionID]
	return data, ok, nil
}

func (m *SessionRepositoryMock) Save(ctx context.Context, sessionID string, data []byte) error {
	m.mu.Lock()
	m.Saves++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sessionID, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[sessionID] = append([]byte(nil), data...)
	return nil
}

func (m *SessionRepositoryMock) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sessionID)
	return nil
}
