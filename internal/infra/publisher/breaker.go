package publisher

import (
	"sync"
	"time"

	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/errs"
)

var ErrBreakerOpen = errs.New("settlement circuit breaker is open")

// circuitBreaker trips after threshold failures inside a tracking window and
// refuses further broker calls until the cooldown elapses. The first call
// after the cooldown is the probe: its outcome decides whether the breaker
// closes again or re-opens.
type circuitBreaker struct {
	mu sync.Mutex

	threshold int
	window    time.Duration
	cooldown  time.Duration
	clock     clock.Clock

	failures    int
	windowStart time.Time
	openedAt    time.Time
	open        bool
}

func newCircuitBreaker(threshold int, window, cooldown time.Duration, clk clock.Clock) *circuitBreaker {
	return &circuitBreaker{
		threshold: threshold,
		window:    window,
		cooldown:  cooldown,
		clock:     clk,
	}
}

func (b *circuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil
	}
	if b.clock.Now().Sub(b.openedAt) < b.cooldown {
		return ErrBreakerOpen
	}
	// Half-open: let one probe through with a clean slate.
	b.open = false
	b.failures = 0
	return nil
}

func (b *circuitBreaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
}

func (b *circuitBreaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	if b.failures == 0 || now.Sub(b.windowStart) > b.window {
		b.failures = 0
		b.windowStart = now
	}
	b.failures++
	if b.failures >= b.threshold {
		b.open = true
		b.openedAt = now
	}
}
