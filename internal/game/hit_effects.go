package game

import "math"

// ScreenEffects implements the shake and landing bounce the simulation
// toggles. Both are whole-frame offsets.
type ScreenEffects struct {
	magnitude float64
	landTicks int

	shaking bool
	landing int
	tick    int
}

func NewScreenEffects(magnitude float64, landTicks int) *ScreenEffects {
	return &ScreenEffects{magnitude: magnitude, landTicks: landTicks}
}

func (e *ScreenEffects) SetShake(on bool) {
	e.shaking = on
}

// Land restarts the bounce from the top.
func (e *ScreenEffects) Land() {
	e.landing = e.landTicks
}

func (e *ScreenEffects) Update() {
	e.tick++
	if e.landing > 0 {
		e.landing--
	}
}

// shakePattern is a four-tick jitter in units of the magnitude.
var shakePattern = [4][2]float64{{1, 0}, {-1, 1}, {0, -1}, {1, 1}}

// Offset is the frame displacement for the current tick.
func (e *ScreenEffects) Offset() (dx, dy float64) {
	if e.shaking {
		p := shakePattern[e.tick%len(shakePattern)]
		dx = p[0] * e.magnitude
		dy = p[1] * e.magnitude
	}
	if e.landing > 0 && e.landTicks > 0 {
		progress := float64(e.landing) / float64(e.landTicks)
		dy += math.Round(e.magnitude * math.Sin(math.Pi*progress))
	}
	return dx, dy
}
