package mathutil

import "math"

// Rand is the slice of math/rand used by the simulation, so tests can
// script the rolls.
type Rand interface {
	Float64() float64
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// Lerp interpolates from start to end; t is not clamped.
func Lerp(start, end, t float64) float64 {
	return start*(1-t) + end*t
}

// Round rounds half up, the way screen coordinates are snapped.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RandomFloatBetween draws uniformly from [lo, hi).
func RandomFloatBetween(r Rand, lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}

// RandomIntBetween draws uniformly from the closed range [lo, hi].
func RandomIntBetween(r Rand, lo, hi int) int {
	return int(math.Floor(RandomFloatBetween(r, float64(lo), float64(hi+1))))
}
