package mocks

import (
	"context"

	"fastwrite/internal/models"
)

type ResultRepositoryMock struct {
	GetFunc    func(ctx context.Context) (*models.DocumentationResult, string, error)
	SaveFunc   func(ctx context.Context, result models.DocumentationResult, outcome string) error
	DeleteFunc func(ctx context.Context) error
}

func (m *ResultRepositoryMock) Get(ctx context.Context) (*models.DocumentationResult, string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, "", nil
}

func (m *ResultRepositoryMock) Save(ctx context.Context, result models.DocumentationResult, outcome string) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, result, outcome)
	}
	return nil
}

func (m *ResultRepositoryMock) Delete(ctx context.Context) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx)
	}
	return nil
}
