// Package guard enforces per-verb usage limits ahead of dispatch.
package guard

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limits bounds how a single verb may be used within one session.
type Limits struct {
	// MaxTotal caps total calls; zero means unlimited.
	MaxTotal int
	// RatePerMinute caps call rate; zero means unlimited.
	RatePerMinute int
	// MaxArgumentLength caps the length of string argument values; zero
	// means unlimited.
	MaxArgumentLength int
}

type verbState struct {
	count   int
	limiter *rate.Limiter
}

// Guard keeps per-verb counters and rate limiters.
type Guard struct {
	mu       sync.Mutex
	byVerb   map[string]*verbState
	defaults Limits
	perVerb  map[string]Limits
}

// New creates a Guard with session defaults and optional per-verb overrides.
func New(defaults Limits, perVerb map[string]Limits) *Guard {
	return &Guard{
		byVerb:   make(map[string]*verbState),
		defaults: defaults,
		perVerb:  perVerb,
	}
}

// Allow checks argument sizes, total-call and rate limits for the verb. A nil
// error admits the request and counts it against the limits.
func (g *Guard) Allow(verb string, args map[string]any) error {
	limits := g.limitsFor(verb)

	if limits.MaxArgumentLength > 0 {
		for key, value := range args {
			str, ok := value.(string)
			if ok && len(str) > limits.MaxArgumentLength {
				return fmt.Errorf("argument %q exceeds %d characters", key, limits.MaxArgumentLength)
			}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	state := g.byVerb[verb]
	if state == nil {
		state = &verbState{}
		if limits.RatePerMinute > 0 {
			state.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(limits.RatePerMinute)), limits.RatePerMinute)
		}
		g.byVerb[verb] = state
	}

	if limits.MaxTotal > 0 && state.count >= limits.MaxTotal {
		return fmt.Errorf("verb %q exceeded %d total calls", verb, limits.MaxTotal)
	}
	if state.limiter != nil && !state.limiter.Allow() {
		return fmt.Errorf("verb %q rate limit exceeded", verb)
	}

	state.count++
	return nil
}

func (g *Guard) limitsFor(verb string) Limits {
	if g.perVerb != nil {
		if limits, ok := g.perVerb[verb]; ok {
			return limits
		}
	}
	return g.defaults
}
