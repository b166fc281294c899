package events

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func logEvent(name string, event SubmissionEvent) {
	var e *zerolog.Event
	switch event.Type {
	case EventError:
		e = log.Error()
	case EventWarn:
		e = log.Warn()
	default:
		e = log.Info()
	}

	e = e.Str("event", name).
		Str("id", event.ID).
		Str("type", string(event.Type)).
		Time("timestamp", event.Timestamp)
	if event.SessionKey != "" {
		e = e.Str("session", event.SessionKey)
	}
	if len(event.Metadata) > 0 {
		e = e.Interface("metadata", event.Metadata)
	}
	e.Msg(event.Message)
}
