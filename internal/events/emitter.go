package events

import (
	"context"
	"sync"
)

// Emitter publishes submission lifecycle events.
type Emitter interface {
	Emit(ctx context.Context, name string, evt SubmissionEvent)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(ctx context.Context, name string, evt SubmissionEvent)

func (f EmitterFunc) Emit(ctx context.Context, name string, evt SubmissionEvent) {
	f(ctx, name, scoped(ctx, evt))
}

// LogEmitter writes every event through the global zerolog logger.
type LogEmitter struct{}

func (LogEmitter) Emit(ctx context.Context, name string, evt SubmissionEvent) {
	logEvent(name, scoped(ctx, evt))
}

// Recorder keeps emitted events in memory, in order.
type Recorder struct {
	mu     sync.Mutex
	names  []string
	events []SubmissionEvent
}

func (r *Recorder) Emit(ctx context.Context, name string, evt SubmissionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
	r.events = append(r.events, scoped(ctx, evt))
}

// Names returns the emitted event names in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

func (r *Recorder) Events() []SubmissionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]SubmissionEvent(nil), r.events...)
}

func scoped(ctx context.Context, evt SubmissionEvent) SubmissionEvent {
	if evt.SessionKey == "" {
		if session := SessionFromContext(ctx); session != "" {
			evt.SessionKey = session
		}
	}
	return evt
}
