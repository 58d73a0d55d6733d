package sim

import (
	"math"

	"mailtruck/internal/config"
)

// Stamp is an optional point in clock time.
type Stamp struct {
	At  float64
	Set bool
}

// Mark records t.
func (s *Stamp) Mark(t float64) {
	s.At = t
	s.Set = true
}

// Since returns now - At, or +Inf for an unset stamp: every
// "has enough time passed" check on it succeeds.
func (s Stamp) Since(now float64) float64 {
	if !s.Set {
		return math.Inf(1)
	}
	return now - s.At
}

// Clock keeps the two time accumulators. Game slows down during the grace
// period after a wall hit; Absolute always runs at the normal rate.
type Clock struct {
	Game     float64
	Absolute float64
	// Multiplier scales turning, sprite advance and airborne gravity.
	Multiplier float64

	step       float64
	normalTime float64
	slowFactor float64
	hitTime    float64
}

// NewClock creates a clock at time zero running at full speed
func NewClock(cfg *config.Config) Clock {
	return Clock{
		Multiplier: 1,
		step:       cfg.Timing.ClockStep,
		normalTime: cfg.Timing.NormalTime,
		slowFactor: cfg.Timing.SlowMultiplier,
		hitTime:    cfg.Timing.HitTime,
	}
}

// InGrace reports whether the slow-motion window after a hit is open.
func (c *Clock) InGrace(v *GameVars) bool {
	return v.LastHitAt.Set && v.LastHitAt.Since(c.Game) < c.hitTime && !v.GameOver
}

// Tick advances both accumulators by one frame and recomputes the
// multiplier from the grace state after the advance.
func (c *Clock) Tick(v *GameVars) {
	divisor := c.normalTime
	if c.InGrace(v) {
		divisor *= c.slowFactor
	}
	c.Game += c.step / divisor
	c.Absolute += c.step / c.normalTime

	c.Multiplier = 1
	if c.InGrace(v) {
		c.Multiplier = 1 / c.slowFactor
	}
}
