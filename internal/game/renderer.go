package game

import (
	"image"
	"image/color"

	"mailtruck/internal/graphics"
	"mailtruck/internal/render"
	"mailtruck/internal/sprites"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws one frame of the simulation
type Renderer struct {
	game  *MailGame
	bands []render.Band
}

// NewRenderer creates a new renderer
func NewRenderer(game *MailGame) *Renderer {
	return &Renderer{
		game:  game,
		bands: make([]render.Band, 0, game.config.GetScreenHeight()),
	}
}

// Draw renders the title screen or the running game
func (r *Renderer) Draw(screen *ebiten.Image) {
	s := r.game.sim

	r.drawSky(screen)
	r.drawGround(screen)

	if !s.Vars.Started {
		r.drawRoad(screen)
		r.drawBackdrop(screen, []string{graphics.WhiteHouse1, graphics.WhiteHouse2, graphics.WhiteHouse3}, 0)
		r.drawFallingEnvelopes(screen)
		r.drawTitle(screen)
		return
	}

	r.drawClouds(screen)
	r.drawBackdrop(screen, []string{graphics.City1, graphics.City2, graphics.City3}, s.XCenter-s.XOffset)
	r.drawRoad(screen)
	r.drawRoadSprites(screen)
	if !s.Vars.GameOver {
		r.drawHUD(screen)
	}
	r.drawWallParticles(screen)
	r.drawEnvelopes(screen)
	r.drawGolds(screen)
	r.drawTruck(screen)
	if s.Vars.GameOver {
		r.drawGameOver(screen)
	}
}

func (r *Renderer) drawSky(screen *ebiten.Image) {
	screen.Fill(r.game.palette.Sky)
}

func (r *Renderer) drawGround(screen *ebiten.Image) {
	d := r.game.sim.Depth
	vector.DrawFilledRect(screen, 0, float32(d.SkyHeight), float32(d.Width), float32(d.GroundHeight), r.game.palette.Road1, false)
}

// drawRoad strokes the ground scanlines from the bottom of the screen up
func (r *Renderer) drawRoad(screen *ebiten.Image) {
	s := r.game.sim
	pal := r.game.palette
	r.bands = r.game.geom.Bands(s.Clock.Game, s.XOffset, r.bands[:0])

	for _, b := range r.bands {
		shoulder, line := pal.Grass1, pal.Road1
		if b.Alt {
			shoulder, line = pal.Grass2, pal.Road2
		}
		y := float32(b.I) + 0.5
		strokeSegment(screen, b.LeftShoulder, y, shoulder)
		strokeSegment(screen, b.RightShoulder, y, shoulder)
		strokeSegment(screen, b.LeftRumble, y, pal.Road2)
		strokeSegment(screen, b.RightRumble, y, pal.Road2)
		strokeSegment(screen, b.Centerline, y, line)
	}
}

func strokeSegment(screen *ebiten.Image, seg render.Segment, y float32, c color.Color) {
	if seg.X0 == seg.X1 {
		return
	}
	vector.StrokeLine(screen, float32(seg.X0), y, float32(seg.X1), y, 1, c, false)
}

func (r *Renderer) drawBackdrop(screen *ebiten.Image, tiles []string, shift float64) {
	size := r.game.config.Sprites.BigSize
	for k, name := range tiles {
		r.drawImage(screen, r.game.sprites.GetSprite(name), r.game.geom.Backdrop(k, size, shift), 1)
	}
}

func (r *Renderer) drawClouds(screen *ebiten.Image) {
	s := r.game.sim
	img := r.game.sprites.GetSprite(graphics.Clouds)
	for i := range s.Registry.Clouds {
		c := &s.Registry.Clouds[i]
		if !c.Active {
			continue
		}
		dst := r.game.geom.Cloud(c.Pos.X, c.Pos.Y, c.Dimensions, s.Player.Pos.X)
		r.drawImage(screen, strip(img, c.Frame, 2, false), dst, 1)
	}
}

func roadSpriteName(sp *sprites.RoadSprite) string {
	switch sp.Category {
	case sprites.Wall:
		return graphics.Wall
	case sprites.Gold:
		return graphics.Gold
	default:
		if sp.Flipped {
			return graphics.MailboxRight
		}
		return graphics.Mailbox
	}
}

func (r *Renderer) drawRoadSprites(screen *ebiten.Image) {
	s := r.game.sim
	for i := range s.Registry.Road {
		sp := &s.Registry.Road[i]
		if !sp.Active {
			continue
		}
		dst := r.game.geom.Blit(s.SpriteOffset(sp), float64(sp.I), sp.Dimensions, true)
		r.drawImage(screen, r.game.sprites.GetSprite(roadSpriteName(sp)), dst, sp.Alpha)
	}
}

func (r *Renderer) drawWallParticles(screen *ebiten.Image) {
	s := r.game.sim
	for i := range s.Registry.WallParts {
		p := &s.Registry.WallParts[i]
		if !p.Active {
			continue
		}
		rect := r.game.geom.Particle(p.Pos.X, p.Pos.Y, p.Dimensions)
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), r.game.palette.BadFunding, false)
	}
}

func (r *Renderer) drawFallingEnvelopes(screen *ebiten.Image) {
	s := r.game.sim
	img := r.game.sprites.GetSprite(graphics.Envelope)
	for i := range s.Registry.Envelopes {
		e := &s.Registry.Envelopes[i]
		r.drawImage(screen, img, render.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Dimensions, H: e.Dimensions}, 1)
	}
}

func (r *Renderer) drawEnvelopes(screen *ebiten.Image) {
	r.drawCollectables(screen, r.game.sim.Registry.Envelopes, graphics.Envelope, 0)
}

func (r *Renderer) drawGolds(screen *ebiten.Image) {
	r.drawCollectables(screen, r.game.sim.Registry.UIGolds, graphics.Gold, r.game.sim.GoldTargetY())
}

func (r *Renderer) drawCollectables(screen *ebiten.Image, pool []sprites.Sprite, name string, yEnd float64) {
	s := r.game.sim
	img := r.game.sprites.GetSprite(name)
	for i := range pool {
		sp := &pool[i]
		if !sp.Active {
			continue
		}
		x, y := s.CollectablePos(sp, yEnd)
		r.drawImage(screen, img, render.Rect{X: x, Y: y, W: sp.Dimensions, H: sp.Dimensions}, 1)
	}
}

// drawTruck draws the current wheel frame centred on the screen at the
// truck's scanline, lifted by the jump
func (r *Renderer) drawTruck(screen *ebiten.Image) {
	s := r.game.sim
	p := &s.Player
	img := strip(r.game.sprites.GetSprite(graphics.Truck), p.Frame, 2, true)
	dst := r.game.geom.Blit(s.XCenter, float64(s.PlayerI)+p.Pos.Y+p.Pos.Z, p.Dimensions, false)
	r.drawImage(screen, img, dst, p.Alpha)
}

// strip returns frame k of an image cut into n equal strips, side by side
// when horizontal is set and stacked otherwise.
func strip(img *ebiten.Image, k, n int, horizontal bool) *ebiten.Image {
	b := img.Bounds()
	if horizontal {
		w := b.Dx() / n
		x := b.Min.X + k*w
		return img.SubImage(image.Rect(x, b.Min.Y, x+w, b.Max.Y)).(*ebiten.Image)
	}
	h := b.Dy() / n
	y := b.Min.Y + k*h
	return img.SubImage(image.Rect(b.Min.X, y, b.Max.X, y+h)).(*ebiten.Image)
}

// drawImage scales img to fill dst
func (r *Renderer) drawImage(screen, img *ebiten.Image, dst render.Rect, alpha float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}
