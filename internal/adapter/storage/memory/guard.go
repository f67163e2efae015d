package memory

import (
	"context"
	"sync"
	"time"
)

// sweepInterval spaces out full passes over the in-process maps.
const sweepInterval = time.Minute

// RelayGuard implements ports.RelayGuard with expiring in-process claims.
// Expired claims are pruned during Claim.
type RelayGuard struct {
	mu        sync.Mutex
	claims    map[string]time.Time // zero time: no expiry
	now       func() time.Time
	nextSweep time.Time
}

// NewRelayGuard creates an empty guard.
func NewRelayGuard() *RelayGuard {
	return &RelayGuard{claims: make(map[string]time.Time), now: time.Now}
}

func (g *RelayGuard) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.sweep(now)
	if exp, held := g.claims[key]; held && (exp.IsZero() || now.Before(exp)) {
		return false, nil
	}
	var exp time.Time
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	g.claims[key] = exp
	return true, nil
}

func (g *RelayGuard) Release(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.claims, key)
	return nil
}

// sweep drops expired claims. Callers hold g.mu.
func (g *RelayGuard) sweep(now time.Time) {
	if now.Before(g.nextSweep) {
		return
	}
	g.nextSweep = now.Add(sweepInterval)
	for key, exp := range g.claims {
		if !exp.IsZero() && !now.Before(exp) {
			delete(g.claims, key)
		}
	}
}

// Len reports the number of stored claims, expired ones included.
func (g *RelayGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.claims)
}
