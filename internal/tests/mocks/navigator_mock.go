package mocks

import (
	"context"
	"sync"
)

type NavigatorMock struct {
	NavigateFunc func(ctx context.Context, route string)

	mu     sync.Mutex
	Routes []string
}

func (m *NavigatorMock) Navigate(ctx context.Context, route string) {
	m.mu.Lock()
	m.Routes = append(m.Routes, route)
	m.mu.Unlock()
	if m.NavigateFunc != nil {
		m.NavigateFunc(ctx, route)
	}
}

func (m *NavigatorMock) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Routes)
}
