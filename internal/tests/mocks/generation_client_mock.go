package mocks

import (
	"context"
	"sync"

	"fastwrite/internal/models"
)

// GenerationClientMock counts calls and keeps the last payload.
type GenerationClientMock struct {
	GenerateFunc func(ctx context.Context, payload models.SubmissionPayload) (*models.GenerationResponse, error)

	mu          sync.Mutex
	Calls       int
	LastPayload models.SubmissionPayload
}

func (m *GenerationClientMock) Generate(ctx context.Context, payload models.SubmissionPayload) (*models.GenerationResponse, error) {
	m.mu.Lock()
	m.Calls++
	m.LastPayload = payload
	m.mu.Unlock()
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, payload)
	}
	return &models.GenerationResponse{}, nil
}

func (m *GenerationClientMock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
