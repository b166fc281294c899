package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"fastwrite/internal/models"
	"fastwrite/internal/repositories"
)

// ResultService hands the latest documentation result to the results view.
type ResultService interface {
	Store(ctx context.Context, result models.DocumentationResult, outcome string) error
	Latest(ctx context.Context) (*StoredDocumentation, error)
	Consume(ctx context.Context) (*StoredDocumentation, error)
}

// StoredDocumentation is a stored result together with the submission state that produced it.
type StoredDocumentation struct {
	Result  models.DocumentationResult `json:"result"`
	Outcome string                     `json:"outcome"`
}

type resultService struct {
	repo repositories.ResultRepository
}

func NewResultService(repo repositories.ResultRepository) ResultService {
	return &resultService{repo: repo}
}

// Store overwrites the previous result.
func (s *resultService) Store(ctx context.Context, result models.DocumentationResult, outcome string) error {
	return s.repo.Save(ctx, result, outcome)
}

// Latest returns nil when nothing has been stored.
func (s *resultService) Latest(ctx context.Context) (*StoredDocumentation, error) {
	result, outcome, err := s.repo.Get(ctx)
	if err != nil || result == nil {
		return nil, err
	}
	return &StoredDocumentation{Result: *result, Outcome: outcome}, nil
}

// Consume reads the latest result and removes it. A failed delete is logged; the result
// is still returned.
func (s *resultService) Consume(ctx context.Context) (*StoredDocumentation, error) {
	stored, err := s.Latest(ctx)
	if err != nil || stored == nil {
		return stored, err
	}
	if err := s.repo.Delete(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to clear consumed documentation result")
	}
	return stored, nil
}
