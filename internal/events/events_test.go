package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSession(t *testing.T) {
	ctx := WithSession(context.Background(), "abc")
	assert.Equal(t, "abc", SessionFromContext(ctx))

	blank := WithSession(context.Background(), "  ")
	assert.Equal(t, "", SessionFromContext(blank))
}

func TestRecorder_ScopesSession(t *testing.T) {
	rec := &Recorder{}
	ctx := WithSession(context.Background(), "s-1")

	rec.Emit(ctx, SubmissionStarted, NewInfo("starting"))
	rec.Emit(ctx, SubmissionDone, NewSuccess("done").WithMetadata("state", "succeeded"))

	assert.Equal(t, []string{SubmissionStarted, SubmissionDone}, rec.Names())
	evts := rec.Events()
	require.Len(t, evts, 2)
	assert.Equal(t, "s-1", evts[0].SessionKey)
	assert.Equal(t, EventSuccess, evts[1].Type)
	assert.Equal(t, "succeeded", evts[1].Metadata["state"])
	assert.NotEmpty(t, evts[0].ID)
}

func TestWithMetadata_DoesNotShareMap(t *testing.T) {
	base := NewInfo("x").WithMetadata("a", "1")
	derived := base.WithMetadata("b", "2")

	assert.Len(t, base.Metadata, 1)
	assert.Len(t, derived.Metadata, 2)
}

func TestLogNavigator(t *testing.T) {
	nav := &LogNavigator{}
	route, count := nav.Last()
	assert.Equal(t, "", route)
	assert.Equal(t, 0, count)

	nav.Navigate(context.Background(), RouteResults)
	route, count = nav.Last()
	assert.Equal(t, RouteResults, route)
	assert.Equal(t, 1, count)
}

func TestEmitterFunc(t *testing.T) {
	var got SubmissionEvent
	emit := EmitterFunc(func(_ context.Context, _ string, evt SubmissionEvent) { got = evt })
	emit.Emit(WithSession(context.Background(), "s-2"), SubmissionFailed, NewError("boom"))
	assert.Equal(t, "s-2", got.SessionKey)
	assert.Equal(t, "boom", got.Message)
}
