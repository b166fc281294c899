package services

import (
	"context"

	"gorm.io/gorm"

	"fastwrite/internal/repositories"
)

// Services aggregates the services of one form session.
type Services struct {
	Forms   FormService
	Results ResultService
	Sources *SourceService
}

// NewServices constructs the service container. Results are backed by db; the form
// snapshot of sessionID lives in sessions.
func NewServices(db *gorm.DB, sessions repositories.SessionRepository, catalog ModelCatalogService, sessionID string) *Services {
	return &Services{
		Forms:   NewFormService(sessions, catalog, sessionID),
		Results: NewResultService(repositories.NewResultRepository(db)),
		Sources: NewSourceService(),
	}
}

// Startup hydrates the form from the session store.
func (s *Services) Startup(ctx context.Context) {
	s.Forms.Startup(ctx)
}
