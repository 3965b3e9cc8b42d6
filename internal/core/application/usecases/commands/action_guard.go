package commands

import (
	"errors"
	"sync"
)

// ErrActionInFlight is returned when an action is submitted for an order
// while an earlier one is still waiting for the remote.
var ErrActionInFlight = errors.New("another action is in progress for this order")

// ActionGuard allows one in-flight action per order.
type ActionGuard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewActionGuard() *ActionGuard {
	return &ActionGuard{busy: make(map[string]struct{})}
}

// Acquire marks key busy. The returned release must be called once the
// remote call has finished.
func (g *ActionGuard) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.busy[key]; ok {
		return nil, ErrActionInFlight
	}
	g.busy[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.busy, key)
			g.mu.Unlock()
		})
	}, nil
}
