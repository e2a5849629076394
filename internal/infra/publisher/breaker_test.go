//go:build unit

package publisher

import (
	"testing"
	"time"

	"gamestore/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_OpensAfterThresholdWithinWindow(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	b := newCircuitBreaker(3, time.Minute, 30*time.Second, clk)

	b.Failure()
	b.Failure()
	assert.NoError(t, b.Allow(), "below threshold the breaker stays closed")

	b.Failure()
	assert.ErrorIs(t, b.Allow(), ErrBreakerOpen)
}

func TestBreaker_WindowExpiryResetsCount(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	b := newCircuitBreaker(3, time.Minute, 30*time.Second, clk)

	b.Failure()
	b.Failure()
	clk.Add(2 * time.Minute)

	// Old failures fell out of the tracking window.
	b.Failure()
	b.Failure()
	assert.NoError(t, b.Allow())
}

func TestBreaker_CooldownAllowsProbe(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	b := newCircuitBreaker(2, time.Minute, 30*time.Second, clk)

	b.Failure()
	b.Failure()
	assert.ErrorIs(t, b.Allow(), ErrBreakerOpen)

	clk.Add(31 * time.Second)
	assert.NoError(t, b.Allow(), "cooldown elapsed, one probe goes through")

	// Probe failure trips the breaker again once the threshold is met.
	b.Failure()
	b.Failure()
	assert.ErrorIs(t, b.Allow(), ErrBreakerOpen)
}

func TestBreaker_SuccessClearsFailures(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	b := newCircuitBreaker(3, time.Minute, 30*time.Second, clk)

	b.Failure()
	b.Failure()
	b.Success()
	b.Failure()
	b.Failure()
	assert.NoError(t, b.Allow())
}
