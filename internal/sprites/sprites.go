// Package sprites holds the fixed-capacity pools the simulation reuses for
// the life of the process.
package sprites

import "fmt"

// Vec3 is a position or velocity; Z is carried but unused by the road.
type Vec3 struct {
	X, Y, Z float64
}

// Category selects the overlap handler of a road sprite.
type Category int

const (
	Wall Category = iota
	Gold
	Mailbox
)

func (c Category) String() string {
	switch c {
	case Wall:
		return "wall"
	case Gold:
		return "gold"
	case Mailbox:
		return "mailbox"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// RoadSprite is one pooled obstacle or pickup travelling down the road.
type RoadSprite struct {
	Category Category
	// Flipped selects the mirrored image (the right-hand mailbox).
	Flipped bool

	Pos         Vec3
	I           int
	ICoord      float64
	RoadPercent float64
	Alpha       float64
	Active      bool

	// LastOnScreenAt is the game time of the last deactivation. It is
	// meaningless while HasBeenOnScreen is false.
	LastOnScreenAt  float64
	HasBeenOnScreen bool

	MinTimeOffScreen float64
	SpawnChance      float64
	Dimensions       float64
}

// CooldownElapsed reports whether the sprite may be considered for spawning
// at gameTime. Sprites that were never deactivated are always eligible.
func (s *RoadSprite) CooldownElapsed(gameTime float64) bool {
	return !s.HasBeenOnScreen || gameTime-s.LastOnScreenAt > s.MinTimeOffScreen
}

// Sprite is a decorative pool entry: envelopes, UI golds, wall particles
// and clouds.
type Sprite struct {
	Pos         Vec3
	Vel         Vec3
	Alpha       float64
	Active      bool
	ActivatedAt float64
	AnimatedAt  float64
	Frame       int
	Dimensions  float64
}
