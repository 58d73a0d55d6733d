package sim

import (
	"mailtruck/internal/mathutil"
	"mailtruck/internal/sprites"
)

// CollectablePos is where a flying envelope or UI gold is drawn: it
// slides from its launch point to (0, yEnd) over the flight time.
func (s *Sim) CollectablePos(sp *sprites.Sprite, yEnd float64) (x, y float64) {
	t := mathutil.Clamp((s.Clock.Game-sp.ActivatedAt)/s.cfg.Timing.CollectableFlightTime, 0, 1)
	return mathutil.Lerp(sp.Pos.X, 0, t), mathutil.Lerp(sp.Pos.Y, yEnd, t)
}

// GoldTargetY is the row UI golds fly to, next to the funding meter.
func (s *Sim) GoldTargetY() float64 {
	return s.cfg.GetSecondRowY()
}

func (s *Sim) fireBurst(b Burst) {
	var pool []sprites.Sprite
	switch b.Pool {
	case EnvelopePool:
		pool = s.Registry.Envelopes
	case UIGoldPool:
		pool = s.Registry.UIGolds
	case WallPartPool:
		pool = s.Registry.WallParts
	}
	if b.Slot < 0 || b.Slot >= len(pool) {
		return
	}
	sp := &pool[b.Slot]
	sp.Active = true
	sp.ActivatedAt = s.Clock.Game
	sp.Pos.X = b.X
	sp.Pos.Y = b.Y
}

// fallEnvelopes is the title screen snowfall of envelopes.
func (s *Sim) fallEnvelopes() {
	h := float64(s.Depth.Height)
	for i := range s.Registry.Envelopes {
		e := &s.Registry.Envelopes[i]
		if e.Pos.Y > h {
			s.Registry.ScatterAbove(e, s.rng)
		}
		e.Pos.X += e.Vel.X
		e.Pos.Y += e.Vel.Y
	}
}

func (s *Sim) updateClouds() {
	w := float64(s.Depth.Width)
	for i := range s.Registry.Clouds {
		c := &s.Registry.Clouds[i]
		if !c.Active {
			continue
		}
		if c.Pos.X < -w {
			c.Pos.X = w + c.Dimensions*3
			c.Pos.Y = s.Registry.CloudY(s.rng)
		} else {
			c.Pos.X += c.Vel.X
		}
	}
}

func (s *Sim) updateWallParticles() {
	h := float64(s.Depth.Height)
	for i := range s.Registry.WallParts {
		p := &s.Registry.WallParts[i]
		if !p.Active {
			continue
		}
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Vel.Y += s.cfg.Player.Gravity
		if p.Pos.Y >= h {
			s.Registry.RetireParticle(p)
		}
	}
}

// updateCollectables retires envelopes and golds that reached the HUD.
func (s *Sim) updateCollectables() {
	for i := range s.Registry.Envelopes {
		e := &s.Registry.Envelopes[i]
		if !e.Active {
			continue
		}
		if _, y := s.CollectablePos(e, 0); y == 0 {
			e.Active = false
		}
	}

	goldY := s.GoldTargetY()
	for i := range s.Registry.UIGolds {
		g := &s.Registry.UIGolds[i]
		if !g.Active {
			continue
		}
		if _, y := s.CollectablePos(g, goldY); y == goldY {
			g.Active = false
		}
	}
}
