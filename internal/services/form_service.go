package services

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"fastwrite/internal/form"
	"fastwrite/internal/llm/client"
	"fastwrite/internal/models"
	"fastwrite/internal/repositories"
)

// FormService owns the live form state of one session. Every change is flushed to the
// session repository; persistence faults are logged and never surface to callers.
type FormService interface {
	Startup(ctx context.Context)
	State() models.FormState
	Dispatch(evt form.Event) models.FormState

	SetSourceType(t models.SourceType) error
	SetRepositoryURL(url string)
	SelectArchive(handle models.ArchiveHandle)
	ClearArchive()
	SetDescription(description string)
	SelectProvider(providerID string) error
	SelectModel(modelID string) error
	ToggleCodeSection(id string, checked bool)
	ToggleReportSection(id string, checked bool)
	SetCodeSections(ids []string)
	SetReportSections(ids []string)
	SetLiteratureMode(mode models.LiteratureMode) error
	SetManualReferences(references string)
	Reset()
}

type formService struct {
	sessions  repositories.SessionRepository
	catalog   ModelCatalogService
	sessionID string

	ctx   context.Context
	mu    sync.RWMutex
	state models.FormState
}

func NewFormService(sessions repositories.SessionRepository, catalog ModelCatalogService, sessionID string) FormService {
	return &formService{
		sessions:  sessions,
		catalog:   catalog,
		sessionID: sessionID,
		ctx:       context.Background(),
		state:     form.Defaults(catalog.DefaultModel(form.DefaultProvider)),
	}
}

// Startup hydrates the state from the session snapshot, if one exists.
func (s *formService) Startup(ctx context.Context) {
	s.ctx = ctx

	data, found, err := s.sessions.Load(ctx, s.sessionID)
	if err != nil {
		log.Error().Err(err).Str("session", s.sessionID).Msg("Error loading saved form data")
		return
	}
	if !found {
		return
	}
	snap, repaired, err := form.Unmarshal(data)
	if err != nil {
		log.Error().Err(err).Str("session", s.sessionID).Msg("Error loading saved form data")
		return
	}
	if repaired {
		log.Warn().Str("session", s.sessionID).Msg("Saved form data was malformed and has been repaired")
	}

	s.mu.Lock()
	s.state = form.ApplySnapshot(s.state, snap)
	s.mu.Unlock()
	log.Debug().Str("session", s.sessionID).Msg("Form state restored from session")
}

// State returns a deep copy of the current form.
func (s *formService) State() models.FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *formService) Dispatch(evt form.Event) models.FormState {
	s.mu.Lock()
	s.state = form.Apply(s.state, evt)
	next := s.state.Clone()
	s.mu.Unlock()

	s.flush(next)
	return next
}

func (s *formService) flush(state models.FormState) {
	data, err := form.Marshal(state)
	if err != nil {
		log.Error().Err(err).Str("session", s.sessionID).Msg("Error saving form data")
		return
	}
	if err := s.sessions.Save(s.ctx, s.sessionID, data); err != nil {
		log.Error().Err(err).Str("session", s.sessionID).Msg("Error saving form data")
	}
}

func (s *formService) SetSourceType(t models.SourceType) error {
	if !t.Valid() {
		return client.NewValidationError("sourceType", "source type must be 'repository' or 'archive'")
	}
	s.Dispatch(form.SourceTypeSelected{SourceType: t})
	return nil
}

func (s *formService) SetRepositoryURL(url string) {
	s.Dispatch(form.RepositoryURLChanged{URL: strings.TrimSpace(url)})
}

func (s *formService) SelectArchive(handle models.ArchiveHandle) {
	s.Dispatch(form.ArchiveSelected{Archive: handle})
}

func (s *formService) ClearArchive() {
	s.Dispatch(form.ArchiveCleared{})
}

func (s *formService) SetDescription(description string) {
	s.Dispatch(form.DescriptionChanged{Description: description})
}

// SelectProvider switches provider and resets the model to its first catalog model.
func (s *formService) SelectProvider(providerID string) error {
	providerID = strings.TrimSpace(providerID)
	if !s.catalog.HasProvider(providerID) {
		return client.NewValidationError("providerId", "unknown AI provider: "+providerID)
	}
	s.Dispatch(form.ProviderSelected{
		ProviderID:     providerID,
		DefaultModelID: s.catalog.DefaultModel(providerID),
	})
	return nil
}

func (s *formService) SelectModel(modelID string) error {
	current := s.State()
	if _, err := s.catalog.GetModel(current.ProviderID, modelID); err != nil {
		return client.NewValidationError("modelId", err.Error())
	}
	s.Dispatch(form.ModelSelected{ModelID: modelID})
	return nil
}

func (s *formService) ToggleCodeSection(id string, checked bool) {
	s.Dispatch(form.CodeSectionToggled{ID: id, Checked: checked})
}

func (s *formService) ToggleReportSection(id string, checked bool) {
	s.Dispatch(form.ReportSectionToggled{ID: id, Checked: checked})
}

func (s *formService) SetCodeSections(ids []string) {
	s.Dispatch(form.CodeSectionsReplaced{IDs: ids})
}

func (s *formService) SetReportSections(ids []string) {
	s.Dispatch(form.ReportSectionsReplaced{IDs: ids})
}

func (s *formService) SetLiteratureMode(mode models.LiteratureMode) error {
	if !mode.Valid() {
		return client.NewValidationError("literatureMode", "literature mode must be 'auto' or 'manual'")
	}
	s.Dispatch(form.LiteratureModeSelected{Mode: mode})
	return nil
}

func (s *formService) SetManualReferences(references string) {
	s.Dispatch(form.ManualReferencesChanged{References: references})
}

// Reset restores the defaults of a fresh session.
func (s *formService) Reset() {
	s.Dispatch(form.Reset{State: form.Defaults(s.catalog.DefaultModel(form.DefaultProvider))})
}
