// Package keytracker turns raw per-tick pointer state into taps and drags.
// The caller samples the device; this package does not import ebiten.
package keytracker

// Pointer is the result of one Step.
type Pointer struct {
	// Tap is set on the tick a press shorter than the tap window ends.
	Tap bool
	// Began is set on the first tick of a press.
	Began bool
	Held  bool
	X     float64
}

// PointerTracker tracks the previous state of a touch or mouse button.
type PointerTracker struct {
	TapTicks int

	prevPressed bool
	heldTicks   int
	lastX       float64
}

func NewPointerTracker(tapTicks int) *PointerTracker {
	return &PointerTracker{TapTicks: tapTicks}
}

// Step records whether the pointer is down this tick and where.
func (k *PointerTracker) Step(pressed bool, x float64) Pointer {
	var p Pointer
	switch {
	case pressed && !k.prevPressed:
		k.heldTicks = 0
		p.Began = true
		p.Held = true
	case pressed:
		k.heldTicks++
		p.Held = true
	case k.prevPressed:
		p.Tap = k.heldTicks < k.TapTicks
	}

	if pressed {
		k.lastX = x
	}
	p.X = k.lastX
	k.prevPressed = pressed
	return p
}
