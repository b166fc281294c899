package repositories

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type memorySessionRepository struct {
	cache *cache.Cache
}

// NewMemorySessionRepository keeps snapshots in process memory; they vanish with the
// process or after ttl, whichever comes first.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &memorySessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *memorySessionRepository) Load(_ context.Context, sessionID string) ([]byte, bool, error) {
	if x, found := r.cache.Get(sessionKey(sessionID)); found {
		data := x.([]byte)
		return append([]byte(nil), data...), true, nil
	}
	return nil, false, nil
}

func (r *memorySessionRepository) Save(_ context.Context, sessionID string, data []byte) error {
	r.cache.Set(sessionKey(sessionID), append([]byte(nil), data...), cache.DefaultExpiration)
	return nil
}

func (r *memorySessionRepository) Delete(_ context.Context, sessionID string) error {
	r.cache.Delete(sessionKey(sessionID))
	return nil
}
