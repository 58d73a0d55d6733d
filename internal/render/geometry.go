// Package render computes where things go on the 320x240 surface. It has
// no image dependencies; internal/game turns its output into draw calls.
package render

import (
	"math"

	"mailtruck/internal/config"
	"mailtruck/internal/depthmap"
	"mailtruck/internal/mathutil"
)

// Segment is a horizontal run on one scanline, from X0 to X1.
type Segment struct {
	X0, X1 float64
}

// Band is everything drawn on one ground scanline.
type Band struct {
	I int

	LeftShoulder  Segment
	RightShoulder Segment
	LeftRumble    Segment
	RightRumble   Segment
	Centerline    Segment

	// Phase is the scrolling texture coordinate in [0, period). Alt is
	// set for the second half of the period and selects grass2 and road2.
	Phase float64
	Alt   bool
}

// Rect is an axis-aligned destination rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Geometry holds the fixed numbers the placement functions need.
type Geometry struct {
	depth *depthmap.Map

	width       float64
	height      float64
	xCenter     float64
	texPeriod   float64
	texStep     float64
	rumbleWidth float64
	rumbleMin   float64
}

// NewGeometry creates the placement helper for a depth map
func NewGeometry(cfg *config.Config, depth *depthmap.Map) *Geometry {
	return &Geometry{
		depth:       depth,
		width:       float64(depth.Width),
		height:      float64(depth.Height),
		xCenter:     float64(depth.Width / 2),
		texPeriod:   cfg.Road.MaxTex,
		texStep:     cfg.Road.MaxTex / cfg.Road.TexDen,
		rumbleWidth: cfg.Road.RumbleWidth,
		rumbleMin:   cfg.Road.RumbleMinPercent,
	}
}

// Band computes scanline i for a camera at xOffset.
func (g *Geometry) Band(i int, textureCoord, gameTime, xOffset float64) Band {
	phase := math.Mod(textureCoord+gameTime+g.depth.DepthAt(i), g.texPeriod)
	if phase < 0 {
		phase += g.texPeriod
	}
	shift := g.xCenter - xOffset

	curW := g.depth.MaxRoadWidth * float64(i) / g.height
	x1 := math.Floor((g.width-curW)/2 + shift)
	x2 := math.Floor(curW + x1)

	road := g.depth.RoadAt(i)
	line := g.depth.CenterlineAt(i)
	rumble := g.rumbleWidth * math.Max(float64(i)/float64(g.depth.GroundHeight), g.rumbleMin)

	return Band{
		I:             i,
		LeftShoulder:  Segment{X0: 0, X1: x1},
		RightShoulder: Segment{X0: x2, X1: g.width},
		LeftRumble:    Segment{X0: mathutil.Round(road.Left + shift), X1: mathutil.Round(road.Left + rumble + shift)},
		RightRumble:   Segment{X0: mathutil.Round(road.Right + shift), X1: mathutil.Round(road.Right - rumble + shift)},
		Centerline:    Segment{X0: mathutil.Round(line.Left + shift), X1: mathutil.Round(line.Right + shift)},
		Phase:         phase,
		Alt:           phase >= g.texPeriod/2,
	}
}

// Bands appends the ground scanlines from the bottom row up to just below
// the sky, advancing the texture coordinate by one step per row.
func (g *Geometry) Bands(gameTime, xOffset float64, dst []Band) []Band {
	textureCoord := 0.0
	for i := g.depth.Height - 1; float64(i) > g.depth.SkyHeight; i-- {
		textureCoord += g.texStep
		dst = append(dst, g.Band(i, textureCoord, gameTime, xOffset))
	}
	return dst
}

// Blit is the depth-aware image placement. With scaled set the size comes
// from y and the image hangs below y; otherwise it is drawn at native size
// with its top at y. In both cases it is centred on x. A zero scale is
// treated as one.
func (g *Geometry) Blit(x, y, dimensions float64, scaled bool) Rect {
	scale := 1.0
	xOff := dimensions / 2
	yOff := 0.0
	if scaled {
		if s := math.Min(y/g.height, 1); s != 0 {
			scale = s
		}
		xOff = scale * dimensions / 2
		yOff = scale * dimensions
	}
	size := mathutil.Round(dimensions * scale)
	return Rect{
		X: mathutil.Round(x - xOff),
		Y: mathutil.Round(y + yOff),
		W: size,
		H: size,
	}
}

// Backdrop places tile k of the three-tile skyline sitting on the horizon,
// shifted horizontally by shift.
func (g *Geometry) Backdrop(k int, tileSize, shift float64) Rect {
	start := g.width/2 - tileSize*3/2 + tileSize/2
	return g.Blit(shift+start+float64(k)*tileSize, float64(g.depth.Horizon)-tileSize, tileSize, false)
}

// Cloud places a cloud strip. Clouds are half as tall as they are wide and
// drift against the truck's lateral position.
func (g *Geometry) Cloud(x, y, dimensions, playerX float64) Rect {
	return Rect{X: x - playerX, Y: y, W: dimensions, H: dimensions / 2}
}

// Particle is the rectangle of a wall fragment.
func (g *Geometry) Particle(x, y, dimensions float64) Rect {
	return Rect{X: x, Y: y, W: dimensions * 2, H: dimensions}
}

// FundingBar is the funding meter rectangle and whether it shows as low.
func (g *Geometry) FundingBar(funding, maxFunding, low, padding, rowY, fontSize float64) (Rect, bool) {
	maxW := g.width - padding*2
	w := math.Floor(maxW * funding / maxFunding)
	return Rect{X: padding, Y: rowY, W: w, H: fontSize + 1}, funding < low
}
