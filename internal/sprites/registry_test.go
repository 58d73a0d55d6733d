package sprites

import (
	"math/rand"
	"testing"

	"mailtruck/internal/config"
)

func newTestRegistry() (*Registry, *rand.Rand) {
	rng := rand.New(rand.NewSource(1))
	return NewRegistry(config.Default(), rng), rng
}

func TestPoolSizes(t *testing.T) {
	r, _ := newTestRegistry()
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"road", len(r.Road), 5},
		{"envelopes", len(r.Envelopes), 100},
		{"ui golds", len(r.UIGolds), 100},
		{"wall parts", len(r.WallParts), 250},
		{"clouds", len(r.Clouds), 10},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s pool = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestRoadOrderAndFlags(t *testing.T) {
	r, _ := newTestRegistry()
	want := []struct {
		cat     Category
		flipped bool
		dims    float64
		chance  float64
		cool    float64
	}{
		{Mailbox, true, 64, 0.02, 1},
		{Mailbox, false, 64, 0.02, 1},
		{Gold, false, 32, 0.01, 10},
		{Wall, false, 64, 0.05, 5},
		{Wall, false, 64, 0.05, 5},
	}
	for i, w := range want {
		s := r.Road[i]
		if s.Category != w.cat || s.Flipped != w.flipped || s.Dimensions != w.dims ||
			s.SpawnChance != w.chance || s.MinTimeOffScreen != w.cool {
			t.Errorf("road[%d] = %s flipped=%v dims=%v chance=%v cool=%v", i, s.Category, s.Flipped, s.Dimensions, s.SpawnChance, s.MinTimeOffScreen)
		}
	}
}

func TestResetRoad(t *testing.T) {
	r, rng := newTestRegistry()
	for i := range r.Road {
		s := &r.Road[i]
		s.Active = true
		s.Alpha = 0.3
		s.I = 200
		s.ICoord = 200.4
		s.LastOnScreenAt = 12
		s.HasBeenOnScreen = true
	}
	r.ResetRoad(rng)
	for i, s := range r.Road {
		if s.Active || s.HasBeenOnScreen || s.LastOnScreenAt != 0 {
			t.Errorf("road[%d] not dormant after reset: %+v", i, s)
		}
		if s.Alpha != 1 || s.I != 120 || s.ICoord != 120 {
			t.Errorf("road[%d] alpha=%v i=%d icoord=%v", i, s.Alpha, s.I, s.ICoord)
		}
		if s.RoadPercent < 0 || s.RoadPercent >= 1 {
			t.Errorf("road[%d] road percent %v out of range", i, s.RoadPercent)
		}
		if !s.CooldownElapsed(0) {
			t.Errorf("road[%d] should be eligible straight after reset", i)
		}
	}
}

func TestCooldownElapsed(t *testing.T) {
	s := RoadSprite{MinTimeOffScreen: 5, LastOnScreenAt: 10, HasBeenOnScreen: true}
	cases := map[float64]bool{10: false, 15: false, 15.001: true}
	for now, want := range cases {
		if got := s.CooldownElapsed(now); got != want {
			t.Errorf("CooldownElapsed(%v) = %v, want %v", now, got, want)
		}
	}
}

func TestTakeInactive(t *testing.T) {
	pool := make([]Sprite, 6)
	pool[5].Active = true
	pool[2].Active = true

	got := TakeInactive(pool, 3, nil)
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("TakeInactive = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TakeInactive = %v, want %v", got, want)
		}
	}

	all := TakeInactive(pool, 10, []int{99})
	if len(all) != 5 || all[0] != 99 {
		t.Errorf("TakeInactive with prefix = %v", all)
	}
}

func TestInitialPools(t *testing.T) {
	r, _ := newTestRegistry()
	if n := CountActive(r.Clouds); n != len(r.Clouds) {
		t.Errorf("%d clouds active, want all", n)
	}
	for _, c := range r.Clouds {
		if c.Vel.X < -0.6 || c.Vel.X >= -0.2 {
			t.Errorf("cloud velocity %v out of range", c.Vel.X)
		}
		if c.Pos.Y < 0 || c.Pos.Y > 56 {
			t.Errorf("cloud y %v outside the sky", c.Pos.Y)
		}
	}
	for _, p := range r.WallParts {
		if p.Active || p.Vel.Y != -3 || p.Dimensions != 4 {
			t.Fatalf("bad wall particle %+v", p)
		}
	}
	for _, e := range r.Envelopes {
		if e.Active || e.Pos.Y > 0 || e.Pos.Y < -240 {
			t.Fatalf("bad envelope %+v", e)
		}
	}
}

func TestRetireParticle(t *testing.T) {
	r, _ := newTestRegistry()
	p := &r.WallParts[0]
	p.Active = true
	p.Vel.Y = 7
	r.RetireParticle(p)
	if p.Active || p.Vel.Y != -3 {
		t.Errorf("retired particle = %+v", *p)
	}
}
