package sprites

import (
	"math"

	"mailtruck/internal/config"
	"mailtruck/internal/mathutil"
)

// Registry owns every pool. Slices are sized once in NewRegistry and never
// grown, so slot indices stay valid for the process lifetime.
type Registry struct {
	// Road holds right mailboxes, left mailboxes, golds and walls, in that
	// order. Update and draw passes walk it front to back.
	Road []RoadSprite

	Envelopes []Sprite
	UIGolds   []Sprite
	WallParts []Sprite
	Clouds    []Sprite

	width        float64
	height       float64
	skyHeight    float64
	bigSize      float64
	particleVelY float64
}

// NewRegistry allocates all pools and seeds their starting positions.
func NewRegistry(cfg *config.Config, rng mathutil.Rand) *Registry {
	r := &Registry{
		width:        float64(cfg.GetScreenWidth()),
		height:       float64(cfg.GetScreenHeight()),
		skyHeight:    cfg.GetSkyHeight(),
		bigSize:      cfg.Sprites.BigSize,
		particleVelY: cfg.Effects.WallParticleVelY,
	}

	spawns := cfg.Spawns
	total := spawns.RightMailboxes.Count + spawns.LeftMailboxes.Count + spawns.Golds.Count + spawns.Walls.Count
	r.Road = make([]RoadSprite, 0, total)
	r.addRoad(rng, cfg, Mailbox, spawns.RightMailboxes, true)
	r.addRoad(rng, cfg, Mailbox, spawns.LeftMailboxes, false)
	r.addRoad(rng, cfg, Gold, spawns.Golds, false)
	r.addRoad(rng, cfg, Wall, spawns.Walls, false)

	r.Envelopes = r.fallingPool(rng, cfg.Effects.Envelopes, cfg.Sprites.CollectableSize)
	r.UIGolds = r.fallingPool(rng, cfg.Effects.UIGolds, cfg.Sprites.CollectableSize)

	fx := cfg.Effects
	r.WallParts = make([]Sprite, fx.WallParticlePool)
	for i := range r.WallParts {
		r.WallParts[i] = Sprite{
			Vel: Vec3{
				X: mathutil.RandomFloatBetween(rng, -fx.WallParticleVelX, fx.WallParticleVelX),
				Y: fx.WallParticleVelY,
			},
			Alpha:      1,
			Dimensions: fx.WallParticleSize,
		}
	}

	r.Clouds = make([]Sprite, fx.Clouds)
	for i := range r.Clouds {
		r.Clouds[i] = Sprite{
			Pos: Vec3{
				X: float64(mathutil.RandomIntBetween(rng, -int(r.width), int(r.width+r.bigSize))),
				Y: r.CloudY(rng),
			},
			Vel:        Vec3{X: mathutil.RandomFloatBetween(rng, fx.CloudVelMin, fx.CloudVelMax)},
			Alpha:      1,
			Active:     true,
			Frame:      mathutil.RandomIntBetween(rng, 0, 1),
			Dimensions: r.bigSize,
		}
	}

	return r
}

func (r *Registry) addRoad(rng mathutil.Rand, cfg *config.Config, cat Category, spawn config.SpawnConfig, flipped bool) {
	dims := cfg.Sprites.Size
	if spawn.Big {
		dims = cfg.Sprites.BigSize
	}
	for n := 0; n < spawn.Count; n++ {
		s := RoadSprite{
			Category:         cat,
			Flipped:          flipped,
			MinTimeOffScreen: spawn.MinTimeOffScreen,
			SpawnChance:      spawn.Chance,
			Dimensions:       dims,
		}
		r.resetRoadSprite(&s, rng)
		r.Road = append(r.Road, s)
	}
}

func (r *Registry) fallingPool(rng mathutil.Rand, n int, dims float64) []Sprite {
	pool := make([]Sprite, n)
	for i := range pool {
		pool[i] = Sprite{
			Vel:        Vec3{X: mathutil.RandomFloatBetween(rng, -1, 1), Y: 1},
			Alpha:      1,
			Dimensions: dims,
		}
		r.ScatterAbove(&pool[i], rng)
	}
	return pool
}

// ScatterAbove places a falling sprite somewhere in the screen-high band
// just above the top edge.
func (r *Registry) ScatterAbove(s *Sprite, rng mathutil.Rand) {
	s.Pos.X = float64(mathutil.RandomIntBetween(rng, 0, int(r.width)))
	s.Pos.Y = float64(mathutil.RandomIntBetween(rng, -int(r.height), 0))
}

// CloudY draws a new cloud height that keeps the cloud inside the sky.
func (r *Registry) CloudY(rng mathutil.Rand) float64 {
	return float64(mathutil.RandomIntBetween(rng, 0, int(r.skyHeight-r.bigSize)))
}

// ResetRoad returns every road sprite to its dormant starting state with
// the cooldown timestamp cleared.
func (r *Registry) ResetRoad(rng mathutil.Rand) {
	for i := range r.Road {
		r.resetRoadSprite(&r.Road[i], rng)
	}
}

func (r *Registry) resetRoadSprite(s *RoadSprite, rng mathutil.Rand) {
	s.Pos = Vec3{}
	s.RoadPercent = rng.Float64()
	s.LastOnScreenAt = 0
	s.HasBeenOnScreen = false
	s.Alpha = 1
	s.I = int(math.Floor(r.skyHeight))
	s.ICoord = r.skyHeight
	s.Active = false
}

// RetireParticle deactivates a wall particle and restores its launch speed.
func (r *Registry) RetireParticle(s *Sprite) {
	s.Active = false
	s.Vel.Y = r.particleVelY
}

// TakeInactive appends to dst the indices of the last n inactive entries of
// pool, in pool order, and returns the extended slice. Fewer than n are
// returned when the pool is mostly busy.
func TakeInactive(pool []Sprite, n int, dst []int) []int {
	start := len(dst)
	for i := len(pool) - 1; i >= 0 && len(dst)-start < n; i-- {
		if !pool[i].Active {
			dst = append(dst, i)
		}
	}
	// Collected back to front; flip into pool order.
	for a, b := start, len(dst)-1; a < b; a, b = a+1, b-1 {
		dst[a], dst[b] = dst[b], dst[a]
	}
	return dst
}

// CountActive returns the number of active entries in pool.
func CountActive(pool []Sprite) int {
	n := 0
	for i := range pool {
		if pool[i].Active {
			n++
		}
	}
	return n
}
