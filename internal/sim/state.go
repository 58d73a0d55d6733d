package sim

import "mailtruck/internal/sprites"

// GameOverReason says which terminal condition ended the run.
type GameOverReason int

const (
	NotOver GameOverReason = iota
	OutOfFunds
	ElectionDay
)

// GameVars is the state bundle replaced wholesale on restart.
type GameVars struct {
	Started             bool
	GameOver            bool
	ReadyToRestart      bool
	PlayedGameOverSound bool
	GameOverReason      GameOverReason

	Funding  float64
	TimeLeft int
	Ballots  int

	LastHitAt                 Stamp // game time
	LastFlashedAt             Stamp // game time
	LastTimeDecrementedAt     Stamp // absolute time
	LastFlashedInstructionsAt Stamp // game time
	GameOverAt                Stamp // absolute time
}

// Player is the truck. Pos.X is the lateral offset from the road centre,
// Pos.Y the jump height (negative is up), Pos.Z the depth of its scanline.
type Player struct {
	Pos        sprites.Vec3
	Vel        sprites.Vec3
	Alpha      float64
	Frame      int
	AnimatedAt float64
	Dimensions float64
}

// Input is sampled once per frame by the window layer.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	// Tap is true on the single update in which a short press was released.
	Tap  bool
	Drag Drag
}

// Drag is a touch held on the screen. X is in logical screen pixels.
type Drag struct {
	Active bool
	// Began is true on the first update of a new touch.
	Began bool
	X     float64
}

// Pressed is the start/restart trigger: any key or a tap.
func (in Input) Pressed() bool {
	return in.Left || in.Right || in.Jump || in.Tap
}
