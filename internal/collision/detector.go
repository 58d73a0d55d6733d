package collision

import (
	"mailtruck/internal/config"
	"mailtruck/internal/depthmap"
)

// Detector tests road sprites against the truck's fixed hitbox.
type Detector struct {
	depth *depthmap.Map

	playerI    float64
	playerSize float64
	centerX    float64
}

// NewDetector creates a detector for the configured truck position
func NewDetector(cfg *config.Config, depth *depthmap.Map) *Detector {
	return &Detector{
		depth:      depth,
		playerI:    float64(cfg.GetPlayerI()),
		playerSize: cfg.Sprites.BigSize,
		centerX:    float64(cfg.GetScreenWidth() / 2),
	}
}

// PlayerBox is the truck hitbox; playerY is the jump offset (negative is up).
func (d *Detector) PlayerBox(playerY float64) BoundingBox {
	return NewBoundingBox(d.centerX-d.playerSize/2, d.playerI+playerY, d.playerSize, d.playerSize)
}

// SpriteBox is the hitbox of a sprite whose top is on scanline i and whose
// centre is at screen x offset.
func (d *Detector) SpriteBox(i int, offset, dimensions float64) BoundingBox {
	size := dimensions * d.depth.Scale(i)
	return NewBoundingBox(offset-size/2, float64(i), size, size)
}

// Reached reports whether the sprite's bottom edge is at or past the truck
// scanline. Sprites that have not reached it never collide.
func (d *Detector) Reached(i int, dimensions float64) bool {
	return float64(i)+dimensions*d.depth.Scale(i) >= d.playerI
}

// Overlaps combines the depth gate with the box test.
func (d *Detector) Overlaps(i int, offset, dimensions, playerY float64) bool {
	if !d.Reached(i, dimensions) {
		return false
	}
	return d.PlayerBox(playerY).Intersects(d.SpriteBox(i, offset, dimensions))
}
