package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// RouteResults is the view that renders the latest documentation result.
const RouteResults = "/results"

// Navigator moves the user to another view.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// LogNavigator records navigation requests and logs them. The CLI uses it in
// place of a router.
type LogNavigator struct {
	mu    sync.Mutex
	last  string
	count int
}

func (n *LogNavigator) Navigate(ctx context.Context, route string) {
	n.mu.Lock()
	n.last = route
	n.count++
	n.mu.Unlock()

	log.Info().Str("route", route).Str("session", SessionFromContext(ctx)).Msg("navigate")
}

// Last returns the most recent route and how many navigations happened.
func (n *LogNavigator) Last() (string, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last, n.count
}
