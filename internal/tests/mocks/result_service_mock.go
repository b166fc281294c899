package mocks

import (
	"context"
	"sync"

	"fastwrite/internal/models"
	"fastwrite/internal/services"
)

// ResultServiceMock records every stored result.
type ResultServiceMock struct {
	StoreFunc   func(ctx context.Context, result models.DocumentationResult, outcome string) error
	LatestFunc  func(ctx context.Context) (*services.StoredDocumentation, error)
	ConsumeFunc func(ctx context.Context) (*services.StoredDocumentation, error)

	mu     sync.Mutex
	Stored []services.StoredDocumentation
}

func (m *ResultServiceMock) Store(ctx context.Context, result models.DocumentationResult, outcome string) error {
	m.mu.Lock()
	m.Stored = append(m.Stored, services.StoredDocumentation{Result: result, Outcome: outcome})
	m.mu.Unlock()
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, result, outcome)
	}
	return nil
}

func (m *ResultServiceMock) Latest(ctx context.Context) (*services.StoredDocumentation, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Stored) == 0 {
		return nil, nil
	}
	last := m.Stored[len(m.Stored)-1]
	return &last, nil
}

func (m *ResultServiceMock) Consume(ctx context.Context) (*services.StoredDocumentation, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx)
	}
	return m.Latest(ctx)
}
