package repositories

import (
	"context"
	"fmt"
)

// SessionKeyPrefix namespaces form snapshots in key/value backends.
const SessionKeyPrefix = "documentationFormData"

// SessionRepository stores one serialized form snapshot per session. Snapshots expire
// with the session and are never kept past its TTL.
type SessionRepository interface {
	Load(ctx context.Context, sessionID string) ([]byte, bool, error)
	Save(ctx context.Context, sessionID string, data []byte) error
	Delete(ctx context.Context, sessionID string) error
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", SessionKeyPrefix, sessionID)
}
