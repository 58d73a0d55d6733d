package sim

import (
	"mailtruck/internal/mathutil"
	"mailtruck/internal/sprites"
)

// RoadState is the lifecycle state of a road sprite, derived from its fields.
type RoadState int

const (
	Dormant RoadState = iota
	Eligible
	Active
)

func (r RoadState) String() string {
	switch r {
	case Dormant:
		return "dormant"
	case Eligible:
		return "eligible"
	default:
		return "active"
	}
}

// RoadStateOf classifies sp at the current game time.
func (s *Sim) RoadStateOf(sp *sprites.RoadSprite) RoadState {
	switch {
	case sp.Active:
		return Active
	case sp.CooldownElapsed(s.Clock.Game):
		return Eligible
	default:
		return Dormant
	}
}

// SpriteOffset maps the sprite's road placement to screen x at its current
// scanline, shifted against the truck's lateral position.
func (s *Sim) SpriteOffset(sp *sprites.RoadSprite) float64 {
	road := s.Depth.RoadAt(sp.I)
	return road.Left + road.Width()*sp.RoadPercent - s.Player.Pos.X
}

// advanceRoadSprites moves every road sprite towards the camera. Inactive
// ones park at the bottom clamp until they are activated again.
func (s *Sim) advanceRoadSprites() {
	increase := s.cfg.Sprites.Advance * s.Clock.Multiplier
	lo := s.Depth.SkyHeight - s.cfg.Sprites.Size*1.5
	hi := float64(s.Depth.Height - 1)

	for i := range s.Registry.Road {
		sp := &s.Registry.Road[i]
		sp.ICoord = mathutil.Clamp(sp.ICoord+increase, lo, hi)
		sp.I = int(mathutil.Round(sp.ICoord))
	}
}

// updateRoadSprites spawns, fades, collides and retires road sprites.
func (s *Sim) updateRoadSprites() {
	over := s.Vars.GameOver

	for i := range s.Registry.Road {
		sp := &s.Registry.Road[i]

		if !sp.Active {
			if over || !sp.CooldownElapsed(s.Clock.Game) {
				continue
			}
			if s.rng.Float64() >= sp.SpawnChance {
				continue
			}
			s.activate(sp)
		}

		if sp.Alpha < 1 {
			sp.Alpha = min(sp.Alpha+s.cfg.Sprites.AlphaIncrease, 1)
		}

		if !over && s.detector.Overlaps(sp.I, s.SpriteOffset(sp), sp.Dimensions, s.Player.Pos.Y) {
			s.handleOverlap(sp)
			continue
		}

		if sp.I > s.Depth.Height-2 {
			s.deactivate(sp)
		}
	}
}

func (s *Sim) activate(sp *sprites.RoadSprite) {
	sp.Active = true
	sp.I = int(s.Depth.SkyHeight - s.cfg.Sprites.BigSize)
	sp.ICoord = float64(sp.I)
	sp.RoadPercent = s.rng.Float64()
	sp.Alpha = 0
}

func (s *Sim) deactivate(sp *sprites.RoadSprite) {
	sp.Active = false
	sp.LastOnScreenAt = s.Clock.Game
	sp.HasBeenOnScreen = true
}

func (s *Sim) handleOverlap(sp *sprites.RoadSprite) {
	switch sp.Category {
	case sprites.Wall:
		s.hitWall(sp)
	case sprites.Gold:
		s.hitGold(sp)
	case sprites.Mailbox:
		s.hitMailbox(sp)
	}
	s.deactivate(sp)
}

func (s *Sim) hitWall(sp *sprites.RoadSprite) {
	if s.InGrace() {
		return
	}
	s.Vars.LastHitAt.Mark(s.Clock.Game)
	s.Vars.Funding = max(s.Vars.Funding-s.cfg.Scoring.WallDamage, 0)
	s.effects.SetShake(true)
	s.sounds.HitWall()
	s.burst(WallPartPool, s.Registry.WallParts, s.cfg.Effects.WallParticles, s.cfg.Timing.ParticleDelay, s.SpriteOffset(sp))
}

func (s *Sim) hitGold(sp *sprites.RoadSprite) {
	s.Vars.Funding = min(s.Vars.Funding+s.cfg.Scoring.GoldAmount, s.cfg.Scoring.StartFunding)
	s.sounds.HitGold()
	s.burst(UIGoldPool, s.Registry.UIGolds, int(s.cfg.Scoring.GoldAmount), s.cfg.Timing.BurstDelay, s.SpriteOffset(sp))
}

func (s *Sim) hitMailbox(sp *sprites.RoadSprite) {
	s.sounds.HitMailbox()
	amount := s.cfg.Scoring.MailboxAmount
	s.burst(EnvelopePool, s.Registry.Envelopes, amount, s.cfg.Timing.BurstDelay, s.SpriteOffset(sp))
	s.Vars.Ballots += mathutil.IntMin(amount, s.cfg.Scoring.MaxBallots)
}

// burst queues up to n idle slots of pool to launch from the truck's
// scanline at x, one every delay.
func (s *Sim) burst(id PoolID, pool []sprites.Sprite, n int, delay, x float64) {
	s.slots = sprites.TakeInactive(pool, n, s.slots[:0])
	for k, slot := range s.slots {
		s.schedule.Add(Burst{
			At:   s.Clock.Absolute + float64(k)*delay,
			Pool: id,
			Slot: slot,
			X:    x,
			Y:    float64(s.PlayerI),
		})
	}
}
