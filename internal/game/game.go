package game

import (
	"image/color"
	"math/rand"
	"time"

	"mailtruck/internal/config"
	"mailtruck/internal/graphics"
	"mailtruck/internal/render"
	"mailtruck/internal/sim"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Palette is the config colors converted once for drawing.
type Palette struct {
	Sky        color.RGBA
	Grass1     color.RGBA
	Grass2     color.RGBA
	Road1      color.RGBA
	Road2      color.RGBA
	BadFunding color.RGBA
	Shadow     color.RGBA
	Text       color.RGBA
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

func NewPalette(c config.ColorsConfig) Palette {
	return Palette{
		Sky:        rgb(c.Sky),
		Grass1:     rgb(c.Grass1),
		Grass2:     rgb(c.Grass2),
		Road1:      rgb(c.Road1),
		Road2:      rgb(c.Road2),
		BadFunding: rgb(c.BadFunding),
		Shadow:     rgb(c.Shadow),
		Text:       color.RGBA{0, 0, 0, 255},
	}
}

// MailGame ties the simulation to its window-side collaborators.
type MailGame struct {
	config  *config.Config
	sim     *sim.Sim
	sprites *graphics.SpriteManager
	effects *ScreenEffects
	geom    *render.Geometry
	palette Palette

	// Faces for the HUD and for the title and game over screens
	hudFace   text.Face
	titleFace text.Face

	// Offscreen surface the frame is composed on before the screen
	// effects offset it
	canvas *ebiten.Image
}

// NewMailGame builds the game on the title screen. sounds may be nil.
func NewMailGame(cfg *config.Config, sounds sim.Sounds) *MailGame {
	effects := NewScreenEffects(cfg.Effects.ShakeMagnitude, cfg.Effects.LandTicks)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := sim.New(cfg, rng, sounds, effects)

	return &MailGame{
		config:    cfg,
		sim:       s,
		sprites:   graphics.NewSpriteManager(cfg.Assets.SpriteDir),
		effects:   effects,
		geom:      render.NewGeometry(cfg, s.Depth),
		palette:   NewPalette(cfg.Colors),
		hudFace:   text.NewGoXFace(basicfont.Face7x13),
		titleFace: text.NewGoXFace(bitmapfont.Face),
		canvas:    ebiten.NewImage(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
	}
}

// Sim exposes the simulation for tools and tests.
func (g *MailGame) Sim() *sim.Sim {
	return g.sim
}
