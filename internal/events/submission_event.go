package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	SubmissionStarted  = "events:submission:started"
	SubmissionRejected = "events:submission:rejected"
	SubmissionDone     = "events:submission:done"
	SubmissionFailed   = "events:submission:failed"
)

// SubmissionEvent is the payload emitted at each step of a documentation request.
type SubmissionEvent struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp"`
	SessionKey string            `json:"sessionKey,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// WithMetadata returns a copy of evt with key set in its metadata.
func (e SubmissionEvent) WithMetadata(key, value string) SubmissionEvent {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	e.Metadata = md
	return e
}

type contextKey string

const sessionContextKey contextKey = "fastwrite/events/session"

// WithSession returns a derived context annotated with the given session key
// so emitters can scope payloads.
func WithSession(ctx context.Context, sessionKey string) context.Context {
	if strings.TrimSpace(sessionKey) == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionContextKey, sessionKey)
}

// SessionFromContext extracts the session key associated with ctx.
func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(sessionContextKey).(string); ok {
		return v
	}
	return ""
}

func CreateEvent(eventType EventType, message string) SubmissionEvent {
	return SubmissionEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info event.
func NewInfo(message string) SubmissionEvent {
	return CreateEvent(EventInfo, message)
}

// NewWarn creates a warn event.
func NewWarn(message string) SubmissionEvent {
	return CreateEvent(EventWarn, message)
}

// NewError creates an error event.
func NewError(message string) SubmissionEvent {
	return CreateEvent(EventError, message)
}

// NewSuccess creates a success event.
func NewSuccess(message string) SubmissionEvent {
	return CreateEvent(EventSuccess, message)
}
