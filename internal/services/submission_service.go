package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"fastwrite/internal/events"
	"fastwrite/internal/llm/client"
	"fastwrite/internal/models"
	"fastwrite/internal/prompt"
)

// DefaultSubmitTimeout bounds the whole round trip to the generation endpoint.
const DefaultSubmitTimeout = 30 * time.Second

type SubmissionState string

const (
	StateIdle             SubmissionState = "idle"
	StateValidating       SubmissionState = "validating"
	StateRejected         SubmissionState = "rejected"
	StateSubmitting       SubmissionState = "submitting"
	StateSucceeded        SubmissionState = "succeeded"
	StateFallbackProduced SubmissionState = "fallback_produced"
	StateFailed           SubmissionState = "failed"
)

const (
	msgRepositoryRequired = "Please enter a GitHub repository URL"
	msgArchiveRequired    = "Please upload a ZIP file"
	msgSectionRequired    = "Please select at least one documentation section"
	msgModelRequired      = "Please select both an AI provider and model"
	msgSecretRequired     = "Please set an API key for %s"
)

var ErrSubmissionInProgress = errors.New("a documentation request is already in progress")

// FormReader exposes the form snapshot a submission is built from.
type FormReader interface {
	State() models.FormState
}

// SubmissionOutcome describes one finished attempt. It never carries the secret.
type SubmissionOutcome struct {
	State           SubmissionState             `json:"state"`
	Result          *models.DocumentationResult `json:"result,omitempty"`
	Err             client.SubmissionError      `json:"-"`
	ProviderID      string                      `json:"providerId"`
	ModelID         string                      `json:"modelId"`
	SourceReference string                      `json:"sourceReference"`
	Duration        time.Duration               `json:"duration"`
}

// SubmissionDeps are the collaborators of a SubmissionService. Emitter defaults to
// events.LogEmitter when nil.
type SubmissionDeps struct {
	Form        FormReader
	Credentials CredentialStore
	Client      client.GenerationClient
	Results     ResultService
	Navigator   events.Navigator
	Emitter     events.Emitter
}

type SubmissionConfig struct {
	Timeout time.Duration
}

// SubmissionService validates the form, submits it and always hands a renderable
// result to the result sink. At most one submission runs at a time.
type SubmissionService struct {
	deps    SubmissionDeps
	timeout time.Duration
	guard   *semaphore.Weighted

	mu    sync.RWMutex
	state SubmissionState
}

func NewSubmissionService(deps SubmissionDeps, cfg SubmissionConfig) *SubmissionService {
	if deps.Emitter == nil {
		deps.Emitter = events.LogEmitter{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return &SubmissionService{
		deps:    deps,
		timeout: timeout,
		guard:   semaphore.NewWeighted(1),
		state:   StateIdle,
	}
}

// State reports where the current or most recent submission is.
func (s *SubmissionService) State() SubmissionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *SubmissionService) setState(state SubmissionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Submit runs one attempt. A failed precondition returns a *client.ValidationError
// with no network activity. Once the request is sent, every outcome is stored and
// navigation to the results view happens exactly once; the returned error is nil
// and outcome.Err carries the classified failure, if any.
func (s *SubmissionService) Submit(ctx context.Context) (*SubmissionOutcome, error) {
	if !s.guard.TryAcquire(1) {
		return nil, ErrSubmissionInProgress
	}
	defer s.guard.Release(1)

	started := time.Now()
	state := s.deps.Form.State()

	s.setState(StateValidating)
	secret, verr := s.validate(state)
	if verr != nil {
		s.setState(StateRejected)
		log.Info().Str("field", verr.Field).Msg(verr.Message)
		s.deps.Emitter.Emit(ctx, events.SubmissionRejected, events.NewWarn(verr.Message).WithMetadata("field", verr.Field))
		s.setState(StateIdle)
		return nil, verr
	}

	payload := BuildPayload(state, secret)
	outcome := &SubmissionOutcome{
		ProviderID:      payload.ProviderID,
		ModelID:         payload.ModelID,
		SourceReference: sourceReference(state),
	}

	s.setState(StateSubmitting)
	s.deps.Emitter.Emit(ctx, events.SubmissionStarted, events.NewInfo("Generating documentation").
		WithMetadata("provider", payload.ProviderID).
		WithMetadata("model", payload.ModelID))

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	resp, err := s.deps.Client.Generate(callCtx, payload)
	cancel()

	var result models.DocumentationResult
	if err != nil {
		subErr := client.AsSubmissionError(err)
		outcome.State = StateFailed
		outcome.Err = subErr
		result = client.ErrorReport(subErr.Error())
	} else if built, ok := client.BuildResult(resp); ok {
		outcome.State = StateSucceeded
		result = built
	} else {
		outcome.State = StateFallbackProduced
		result = client.OfflineDocument(sourceDescription(state))
	}
	outcome.Result = &result
	outcome.Duration = time.Since(started)
	s.setState(outcome.State)

	s.finish(ctx, outcome)
	return outcome, nil
}

// finish stores the result, reports the outcome and navigates. Storage faults are
// logged and do not stop navigation.
func (s *SubmissionService) finish(ctx context.Context, outcome *SubmissionOutcome) {
	logger := log.With().
		Str("state", string(outcome.State)).
		Str("provider", outcome.ProviderID).
		Str("model", outcome.ModelID).
		Dur("duration", outcome.Duration).
		Logger()

	if err := s.deps.Results.Store(ctx, *outcome.Result, string(outcome.State)); err != nil {
		logger.Error().Err(err).Msg("Error storing documentation result")
	}

	switch outcome.State {
	case StateFailed:
		logger.Error().Str("kind", string(outcome.Err.Kind())).Msg(outcome.Err.Error())
		s.deps.Emitter.Emit(ctx, events.SubmissionFailed, events.NewError(outcome.Err.Error()).
			WithMetadata("kind", string(outcome.Err.Kind())))
	case StateFallbackProduced:
		logger.Warn().Msg("Generation returned no content, produced offline document")
		s.deps.Emitter.Emit(ctx, events.SubmissionDone, events.NewWarn("Documentation generated offline").
			WithMetadata("state", string(outcome.State)))
	default:
		logger.Info().Msg("Documentation generated")
		s.deps.Emitter.Emit(ctx, events.SubmissionDone, events.NewSuccess("Documentation generated").
			WithMetadata("state", string(outcome.State)))
	}

	s.deps.Navigator.Navigate(ctx, events.RouteResults)
}

// validate checks the preconditions in order and returns the stored secret.
func (s *SubmissionService) validate(state models.FormState) (string, *client.ValidationError) {
	switch state.SourceType {
	case models.SourceRepository:
		if strings.TrimSpace(state.RepositoryURL) == "" {
			return "", client.NewValidationError("repositoryUrl", msgRepositoryRequired)
		}
	case models.SourceArchive:
		if state.Archive == nil {
			return "", client.NewValidationError("archive", msgArchiveRequired)
		}
	}
	if len(state.CodeSectionIDs) == 0 && len(state.ReportSectionIDs) == 0 {
		return "", client.NewValidationError("sections", msgSectionRequired)
	}
	if strings.TrimSpace(state.ProviderID) == "" || strings.TrimSpace(state.ModelID) == "" {
		return "", client.NewValidationError("model", msgModelRequired)
	}

	secret, found, err := s.deps.Credentials.Get(state.ProviderID)
	if err != nil {
		log.Warn().Err(err).Str("provider", state.ProviderID).Msg("keyring lookup failed")
	}
	if err != nil || !found {
		return "", client.NewValidationError("secret", fmt.Sprintf(msgSecretRequired, state.ProviderID))
	}
	return secret, nil
}

// BuildPayload assembles the request body. Exactly one of the two references carries
// a value; the other is models.NotApplicable.
func BuildPayload(state models.FormState, secret string) models.SubmissionPayload {
	payload := models.SubmissionPayload{
		RepositoryReference: models.NotApplicable,
		SecondaryReference:  models.NotApplicable,
		ProviderID:          state.ProviderID,
		ModelID:             state.ModelID,
		Secret:              secret,
		Prompt:              prompt.CompileState(state),
	}
	if ref := sourceReference(state); ref != "" {
		if state.SourceType == models.SourceArchive {
			payload.SecondaryReference = ref
		} else {
			payload.RepositoryReference = ref
		}
	}
	return payload
}

func sourceReference(state models.FormState) string {
	if state.SourceType == models.SourceArchive {
		if state.Archive == nil {
			return ""
		}
		return state.Archive.Name
	}
	return strings.TrimSpace(state.RepositoryURL)
}

func sourceDescription(state models.FormState) string {
	if state.SourceType == models.SourceRepository && strings.TrimSpace(state.RepositoryURL) != "" {
		return "the repository at " + strings.TrimSpace(state.RepositoryURL)
	}
	return "the uploaded code"
}
