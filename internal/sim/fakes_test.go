package sim

import (
	"testing"

	"mailtruck/internal/config"
)

// soundRecorder counts every trigger by name.
type soundRecorder struct {
	calls   map[string]int
	started bool
}

func newSoundRecorder() *soundRecorder {
	return &soundRecorder{calls: make(map[string]int)}
}

func (r *soundRecorder) HitWall()      { r.calls["hitWall"]++ }
func (r *soundRecorder) HitGold()      { r.calls["hitGold"]++ }
func (r *soundRecorder) HitMailbox()   { r.calls["hitMailbox"]++ }
func (r *soundRecorder) AirEngine()    { r.calls["air"]++ }
func (r *soundRecorder) GroundEngine() { r.calls["ground"]++ }
func (r *soundRecorder) ElectionDay()  { r.calls["electionDay"]++ }
func (r *soundRecorder) NoFunds()      { r.calls["noFunds"]++ }
func (r *soundRecorder) QuietEngines() { r.calls["quiet"]++ }
func (r *soundRecorder) StartEngines() {
	r.calls["start"]++
	r.started = true
}
func (r *soundRecorder) EnginesStarted() bool { return r.started }

type effectRecorder struct {
	shake     bool
	shakeSets int
	lands     int
}

func (r *effectRecorder) SetShake(on bool) {
	if on {
		r.shakeSets++
	}
	r.shake = on
}

func (r *effectRecorder) Land() { r.lands++ }

// scriptedRand returns queued values first, then fallback forever.
type scriptedRand struct {
	queue    []float64
	fallback float64
}

func (r *scriptedRand) Float64() float64 {
	if len(r.queue) > 0 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		return v
	}
	return r.fallback
}

type harness struct {
	sim     *Sim
	sounds  *soundRecorder
	effects *effectRecorder
	rng     *scriptedRand
}

// newHarness builds a running game in which nothing spawns on its own.
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		sounds:  newSoundRecorder(),
		effects: &effectRecorder{},
		rng:     &scriptedRand{fallback: 0.99},
	}
	h.sim = New(config.Default(), h.rng, h.sounds, h.effects)
	h.sim.Vars.Started = true
	return h
}

func (h *harness) run(frames int, in Input) {
	for i := 0; i < frames; i++ {
		h.sim.Update(in)
	}
}

// place puts road sprite idx on scanline i, active and opaque.
func (h *harness) place(idx int, i int, roadPercent float64) {
	sp := &h.sim.Registry.Road[idx]
	sp.Active = true
	sp.I = i
	sp.ICoord = float64(i)
	sp.RoadPercent = roadPercent
	sp.Alpha = 1
}

const (
	rightMailbox = 0
	leftMailbox  = 1
	goldSprite   = 2
	firstWall    = 3
	secondWall   = 4
)
