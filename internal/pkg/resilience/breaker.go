package resilience

import (
	"sync"
	"time"

	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/pkg/errs"
)

var ErrCircuitOpen = errs.New("circuit breaker open")

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

// Breaker is a consecutive-failure circuit breaker. After Threshold
// failures it opens and rejects calls for Cooldown, then allows a
// single probe (half-open). A successful probe closes it again.
type Breaker struct {
	mu        sync.Mutex
	state     breakerState
	failures  int
	openedAt  time.Time
	threshold int
	cooldown  time.Duration
	clk       clock.Clock
}

func NewBreaker(threshold int, cooldown time.Duration, clk clock.Clock) *Breaker {
	if threshold < 1 {
		threshold = 1
	}
	return &Breaker{
		threshold: threshold,
		cooldown:  cooldown,
		clk:       clk,
	}
}

// Allow reports whether a call may proceed. It returns ErrCircuitOpen
// while the breaker is open and the cooldown has not elapsed. Once the
// cooldown elapses exactly one caller is admitted as the probe; others
// keep getting ErrCircuitOpen until that probe's outcome is recorded.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateHalfOpen:
		return ErrCircuitOpen
	case stateOpen:
		if b.clk.Now().Sub(b.openedAt) < b.cooldown {
			return ErrCircuitOpen
		}
		b.state = stateHalfOpen
	}
	return nil
}

// Record feeds the outcome of a permitted call back into the breaker.
func (b *Breaker) Record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.state = stateClosed
		b.failures = 0
		return
	}

	b.failures++
	if b.state == stateHalfOpen || b.failures >= b.threshold {
		b.state = stateOpen
		b.openedAt = b.clk.Now()
	}
}
