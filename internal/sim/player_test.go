package sim

import (
	"math"
	"testing"
)

func TestJumpAndLand(t *testing.T) {
	h := newHarness(t)

	h.sim.Update(Input{Jump: true})
	if got := h.sim.Player.Pos.Y; got != -10 {
		t.Fatalf("y after jump = %v, want -10", got)
	}
	if h.sounds.calls["air"] != 1 {
		t.Errorf("air engine triggered %d times, want 1", h.sounds.calls["air"])
	}

	// Holding jump in the air does not jump again.
	h.sim.Update(Input{Jump: true})
	if h.sounds.calls["air"] != 1 {
		t.Error("jumped again while airborne")
	}

	minY := 0.0
	for k := 0; h.effects.lands == 0; k++ {
		if k > 300 {
			t.Fatal("truck never landed")
		}
		h.sim.Update(Input{})
		minY = math.Min(minY, h.sim.Player.Pos.Y)
	}
	if minY > -100 {
		t.Errorf("peak height %v lower than expected", minY)
	}
	if h.sim.Player.Pos.Y != 0 {
		t.Errorf("landed y = %v, want 0", h.sim.Player.Pos.Y)
	}
	if h.sounds.calls["ground"] != 1 || h.effects.lands != 1 {
		t.Errorf("ground engine %d, lands %d, want 1 each", h.sounds.calls["ground"], h.effects.lands)
	}
}

func TestTapJumps(t *testing.T) {
	h := newHarness(t)
	h.sim.Update(Input{Tap: true})
	if h.sim.Player.Pos.Y >= 0 {
		t.Errorf("tap should jump, y = %v", h.sim.Player.Pos.Y)
	}
}

func TestLateralClamp(t *testing.T) {
	h := newHarness(t)
	h.run(100, Input{Right: true})
	if got := h.sim.Player.Pos.X; got != 160 {
		t.Errorf("x = %v, want clamped to 160", got)
	}
	if got := h.sim.XOffset; got != 320 {
		t.Errorf("camera = %v, want 320", got)
	}

	h.run(200, Input{Left: true})
	if got := h.sim.Player.Pos.X; got != -160 {
		t.Errorf("x = %v, want clamped to -160", got)
	}
}

func TestDragMovesTruck(t *testing.T) {
	h := newHarness(t)
	h.sim.Player.Pos.X = 10

	h.sim.Update(Input{Drag: Drag{Active: true, Began: true, X: 100}})
	h.sim.Update(Input{Drag: Drag{Active: true, X: 130}})
	if got := h.sim.Player.Pos.X; got != 40 {
		t.Errorf("x after drag = %v, want 40", got)
	}

	h.sim.Update(Input{Drag: Drag{Active: true, X: -400}})
	if got := h.sim.Player.Pos.X; got != -160 {
		t.Errorf("x after long drag = %v, want clamped -160", got)
	}
}

func TestCountdown(t *testing.T) {
	h := newHarness(t)

	h.sim.Update(Input{})
	if got := h.sim.Vars.TimeLeft; got != 89 {
		t.Fatalf("time left after first frame = %d, want 89", got)
	}
	h.run(34, Input{})
	if got := h.sim.Vars.TimeLeft; got != 89 {
		t.Errorf("time left after 35 frames = %d, want 89", got)
	}
	h.run(3, Input{})
	if got := h.sim.Vars.TimeLeft; got != 88 {
		t.Errorf("time left after 38 frames = %d, want 88", got)
	}
}

func TestCountdownIgnoresSlowMotion(t *testing.T) {
	h := newHarness(t)
	h.sim.Update(Input{})
	h.sim.Vars.LastHitAt.Mark(h.sim.Clock.Game)
	h.run(37, Input{})
	if got := h.sim.Vars.TimeLeft; got != 88 {
		t.Errorf("time left = %d, want 88 regardless of grace", got)
	}
}

func TestSpriteLeavesBottom(t *testing.T) {
	h := newHarness(t)
	h.place(firstWall, 238, 0)

	h.sim.Update(Input{})

	wall := h.sim.Registry.Road[firstWall]
	if wall.Active {
		t.Fatal("sprite past the bottom should deactivate")
	}
	if !wall.HasBeenOnScreen || wall.LastOnScreenAt != h.sim.Clock.Game {
		t.Error("deactivation should start the cooldown")
	}
	if h.sim.Vars.Funding != 100 || h.sounds.calls["hitWall"] != 0 {
		t.Error("a miss must not cost funding")
	}
}

func TestActivation(t *testing.T) {
	h := newHarness(t)
	// Only the first roll succeeds, and it belongs to the right mailbox.
	h.rng.queue = []float64{0.0}
	sp := &h.sim.Registry.Road[rightMailbox]

	h.sim.Update(Input{})

	if !sp.Active {
		t.Fatal("mailbox should have spawned")
	}
	if sp.I != 56 || sp.ICoord != 56 {
		t.Errorf("spawn scanline = %d/%v, want 56", sp.I, sp.ICoord)
	}
	if sp.Alpha != h.sim.Config().Sprites.AlphaIncrease {
		t.Errorf("alpha = %v, want one fade step", sp.Alpha)
	}
	if h.sim.RoadStateOf(sp) != Active {
		t.Errorf("state = %v, want active", h.sim.RoadStateOf(sp))
	}

	// Next frame the advance clamp lifts it to the lowest travel row.
	h.sim.Update(Input{})
	if sp.I != 72 {
		t.Errorf("i after first advance = %d, want 72", sp.I)
	}

	for k := 0; k < 20; k++ {
		h.sim.Update(Input{})
	}
	if sp.Alpha != 1 {
		t.Errorf("alpha = %v, want fully faded in", sp.Alpha)
	}
}

func TestDormantState(t *testing.T) {
	h := newHarness(t)
	sp := &h.sim.Registry.Road[goldSprite]
	h.sim.Clock.Game = 3
	h.sim.deactivate(sp)
	if got := h.sim.RoadStateOf(sp); got != Dormant {
		t.Errorf("state = %v, want dormant", got)
	}
	h.sim.Clock.Game = 13.5
	if got := h.sim.RoadStateOf(sp); got != Eligible {
		t.Errorf("state = %v, want eligible", got)
	}
}

func TestTruckFlashDuringGrace(t *testing.T) {
	h := newHarness(t)
	h.place(firstWall, h.sim.PlayerI, 0.5)
	h.sim.Update(Input{})

	seen := map[float64]bool{}
	for k := 0; k < 40; k++ {
		h.sim.Update(Input{})
		seen[h.sim.Player.Alpha] = true
	}
	if !seen[0.5] || !seen[1] {
		t.Errorf("truck alpha values %v, want both 1 and 0.5", seen)
	}

	for h.sim.InGrace() {
		h.sim.Update(Input{})
	}
	h.sim.Update(Input{})
	if h.sim.Player.Alpha != 1 {
		t.Errorf("alpha after grace = %v, want 1", h.sim.Player.Alpha)
	}
}

func TestTruckAnimation(t *testing.T) {
	h := newHarness(t)
	frames := map[int]bool{}
	for k := 0; k < 20; k++ {
		h.sim.Update(Input{})
		frames[h.sim.Player.Frame] = true
	}
	if !frames[0] || !frames[1] {
		t.Errorf("truck frames %v, want both", frames)
	}

	h.sim.Vars.Funding = 0
	h.sim.Update(Input{})
	frozen := h.sim.Player.Frame
	h.run(20, Input{})
	if h.sim.Player.Frame != frozen {
		t.Error("truck animation should stop on game over")
	}
}

func TestCollectableFlight(t *testing.T) {
	h := newHarness(t)
	h.place(goldSprite, h.sim.PlayerI, 0.5)
	h.sim.Update(Input{})

	gold := &h.sim.Registry.UIGolds[len(h.sim.Registry.UIGolds)-5]
	if !gold.Active {
		t.Fatal("first UI gold should be flying")
	}
	x, y := h.sim.CollectablePos(gold, h.sim.GoldTargetY())
	if x != gold.Pos.X || y != float64(h.sim.PlayerI) {
		t.Errorf("launch position = %v,%v", x, y)
	}

	// Five clock units at 1/7 per frame is 35 frames.
	h.run(40, Input{})
	if gold.Active {
		t.Error("UI gold should retire on reaching the meter")
	}
}

func TestInstructionsFlash(t *testing.T) {
	h := newHarness(t)
	h.sim.Vars.Started = false
	if h.sim.InstructionsAlpha != 1 {
		t.Fatal("instructions start visible")
	}
	h.run(30, Input{})
	if h.sim.InstructionsAlpha != 1 {
		t.Error("instructions toggled too early")
	}
	h.run(10, Input{})
	if h.sim.InstructionsAlpha != 0 {
		t.Error("instructions should toggle after five units")
	}
}
