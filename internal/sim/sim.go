// Package sim advances the game one frame at a time. It owns all mutable
// state and never touches a window or an audio device; those are reached
// through the Sounds and Effects interfaces.
package sim

import (
	"mailtruck/internal/collision"
	"mailtruck/internal/config"
	"mailtruck/internal/depthmap"
	"mailtruck/internal/mathutil"
	"mailtruck/internal/sprites"
)

// Sim is the whole simulation state.
type Sim struct {
	cfg      *config.Config
	rng      mathutil.Rand
	sounds   Sounds
	effects  Effects
	detector *collision.Detector
	schedule *Schedule

	Depth    *depthmap.Map
	Registry *sprites.Registry

	Clock  Clock
	Vars   GameVars
	Player Player

	// XOffset is the camera centre; the road is shifted by XCenter-XOffset.
	XOffset float64
	XCenter float64
	PlayerI int

	InstructionsAlpha float64

	dragStartX       float64
	dragStartPlayerX float64
	slots            []int
}

// New builds a simulation on the title screen. Nil collaborators are
// replaced with silent ones.
func New(cfg *config.Config, rng mathutil.Rand, sounds Sounds, effects Effects) *Sim {
	if sounds == nil {
		sounds = nopSounds{}
	}
	if effects == nil {
		effects = nopEffects{}
	}

	depth := depthmap.New(cfg)
	reg := sprites.NewRegistry(cfg, rng)

	s := &Sim{
		cfg:      cfg,
		rng:      rng,
		sounds:   sounds,
		effects:  effects,
		detector: collision.NewDetector(cfg, depth),
		schedule: NewSchedule(len(reg.Envelopes) + len(reg.UIGolds) + len(reg.WallParts)),
		Depth:    depth,
		Registry: reg,
		Clock:    NewClock(cfg),
		XCenter:  float64(cfg.GetScreenWidth() / 2),
		PlayerI:  cfg.GetPlayerI(),

		InstructionsAlpha: 1,
		slots:             make([]int, 0, cfg.Effects.WallParticles),
	}
	s.XOffset = s.XCenter
	s.Vars = s.freshVars(false)
	s.Vars.LastFlashedInstructionsAt.Mark(0)
	s.Player = Player{
		Pos:        sprites.Vec3{Z: depth.DepthAt(s.PlayerI)},
		Alpha:      1,
		AnimatedAt: 1,
		Dimensions: cfg.Sprites.BigSize,
	}
	return s
}

func (s *Sim) freshVars(started bool) GameVars {
	return GameVars{
		Started:  started,
		Funding:  s.cfg.Scoring.StartFunding,
		TimeLeft: s.cfg.Scoring.StartTime,
	}
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() *config.Config {
	return s.cfg
}

// InGrace reports whether the post-hit slow motion is running.
func (s *Sim) InGrace() bool {
	return s.Clock.InGrace(&s.Vars)
}

// PendingBursts is the number of staggered cosmetic activations queued.
func (s *Sim) PendingBursts() int {
	return s.schedule.Pending()
}

// Update advances one frame.
func (s *Sim) Update(in Input) {
	s.Clock.Tick(&s.Vars)

	if s.Vars.Started {
		s.runGame(in)
	} else {
		s.runTitle(in)
	}

	if s.Vars.LastFlashedInstructionsAt.Since(s.Clock.Game) >= s.cfg.Timing.InstructionsFlashTime {
		s.Vars.LastFlashedInstructionsAt.Mark(s.Clock.Game)
		if s.InstructionsAlpha == 1 {
			s.InstructionsAlpha = 0
		} else {
			s.InstructionsAlpha = 1
		}
	}
}

func (s *Sim) runTitle(in Input) {
	if in.Pressed() {
		if !s.sounds.EnginesStarted() {
			s.sounds.StartEngines()
		}
		s.sounds.ElectionDay()
		s.Vars.Started = true
	}

	s.XOffset = s.XCenter
	s.fallEnvelopes()
}

func (s *Sim) runGame(in Input) {
	if s.Vars.LastTimeDecrementedAt.Since(s.Clock.Absolute) > s.cfg.Timing.CountdownStep {
		s.Vars.TimeLeft = max(s.Vars.TimeLeft-1, 0)
		s.Vars.LastTimeDecrementedAt.Mark(s.Clock.Absolute)
	}

	if s.Vars.GameOver {
		if !s.Vars.ReadyToRestart && s.Vars.GameOverAt.Since(s.Clock.Absolute) >= s.cfg.Timing.RestartDelay {
			s.Vars.ReadyToRestart = true
		}
		if s.Vars.ReadyToRestart && in.Pressed() {
			s.restart()
		}
	} else {
		s.handlePlayerInput(in)
		s.advanceRoadSprites()
	}

	if !s.InGrace() {
		s.effects.SetShake(false)
	}

	s.updateClouds()
	s.updateRoadSprites()
	s.updateWallParticles()
	s.updateCollectables()
	s.updateTruck()

	s.schedule.Fire(s.Clock.Absolute, s.fireBurst)

	switch {
	case s.Vars.Funding <= 0:
		s.endGame(OutOfFunds)
	case s.Vars.TimeLeft <= 0:
		s.endGame(ElectionDay)
	}
}

func (s *Sim) handlePlayerInput(in Input) {
	p := &s.Player
	m := s.Clock.Multiplier
	turning := s.cfg.Player.TurningSpeed * m

	// Touch drag positions the truck directly relative to where it began.
	if in.Drag.Began {
		s.dragStartX = in.Drag.X
		s.dragStartPlayerX = p.Pos.X
	} else if in.Drag.Active {
		p.Pos.X = s.dragStartPlayerX + (in.Drag.X - s.dragStartX)
	}

	if in.Left {
		p.Pos.X -= turning
	}
	if in.Right {
		p.Pos.X += turning
	}
	if in.Jump || in.Tap {
		s.jump()
	}

	maxVel := -s.cfg.Player.JumpVelocity
	if p.Pos.Y < 0 {
		p.Vel.Y = mathutil.Clamp(m*(p.Vel.Y+s.cfg.Player.Gravity), -maxVel, maxVel)
	}

	if p.Pos.Y > 0 {
		p.Vel.Y = 0
		p.Pos.Y = 0
		s.sounds.GroundEngine()
		s.effects.Land()
	}

	p.Pos.Y += mathutil.Clamp(p.Vel.Y, -maxVel, maxVel)
	edge := s.cfg.GetPlayerEdge()
	p.Pos.X = mathutil.Clamp(p.Pos.X, -edge, edge)
	s.XOffset = s.XCenter + p.Pos.X
}

func (s *Sim) jump() {
	if s.Player.Pos.Y != 0 {
		return
	}
	s.Player.Vel.Y = s.cfg.Player.JumpVelocity
	s.sounds.AirEngine()
}

// updateTruck runs the grace-period flash and the two-frame wheel
// animation.
func (s *Sim) updateTruck() {
	p := &s.Player
	now := s.Clock.Game

	if !s.InGrace() {
		p.Alpha = 1
	} else if s.Vars.LastFlashedAt.Since(now) >= s.cfg.Timing.FlashTime {
		if p.Alpha == 1 {
			p.Alpha = 0.5
		} else {
			p.Alpha = 1
		}
		s.Vars.LastFlashedAt.Mark(now)
	}

	if now-p.AnimatedAt > s.cfg.Timing.AnimationTime && !s.Vars.GameOver {
		p.Frame = (p.Frame + 1) % 2
		p.AnimatedAt = now
	}
}

func (s *Sim) endGame(reason GameOverReason) {
	if !s.Vars.PlayedGameOverSound {
		switch reason {
		case OutOfFunds:
			s.sounds.NoFunds()
		case ElectionDay:
			s.sounds.ElectionDay()
		}
		s.Vars.PlayedGameOverSound = true
	}

	if s.Vars.GameOver {
		return
	}
	s.Vars.GameOver = true
	s.Vars.GameOverReason = reason
	s.Vars.GameOverAt.Mark(s.Clock.Absolute)
	s.Player.Alpha = 1
	s.effects.SetShake(false)
	s.sounds.QuietEngines()
}

func (s *Sim) restart() {
	s.sounds.ElectionDay()
	s.Vars = s.freshVars(true)
	s.Registry.ResetRoad(s.rng)
}
