// Package clock measures frame and session time for the game loop.
package clock

import (
	"math"
	"time"
)

// DefaultMaxDelta is the longest frame, in seconds, Tick reports by default.
const DefaultMaxDelta = 0.25

// GameClock tracks time since the previous tick and since the session began.
// It is the only place frame deltas are produced, and every delta it hands out
// is finite, non-negative and at most MaxDelta seconds.
type GameClock struct {
	provider TimeProvider
	start    time.Time
	last     time.Time

	sinceLast  float64
	sinceStart float64

	// MaxDelta caps sinceLast in seconds. Zero disables the cap.
	MaxDelta float64
}

// New starts a clock at the provider's current time.
func New(provider TimeProvider) *GameClock {
	if provider == nil {
		provider = System{}
	}
	now := provider.Now()
	return &GameClock{
		provider: provider,
		start:    now,
		last:     now,
		MaxDelta: DefaultMaxDelta,
	}
}

// Tick samples the provider and returns the clamped seconds since the previous
// tick and the seconds since the clock was created.
func (c *GameClock) Tick() (sinceLast, sinceStart float64) {
	now := c.provider.Now()
	c.sinceLast = c.clamp(now.Sub(c.last).Seconds())
	c.sinceStart = now.Sub(c.start).Seconds()
	c.last = now
	return c.sinceLast, c.sinceStart
}

func (c *GameClock) clamp(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		return c.MaxDelta
	}
	return dt
}

// Delta returns the value of sinceLast from the latest Tick.
func (c *GameClock) Delta() float64 {
	return c.sinceLast
}

// Elapsed returns the value of sinceStart from the latest Tick.
func (c *GameClock) Elapsed() float64 {
	return c.sinceStart
}

// Started returns when the session began.
func (c *GameClock) Started() time.Time {
	return c.start
}
