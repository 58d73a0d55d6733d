package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameLoop manages the main game update and render cycle
type GameLoop struct {
	game         *MailGame
	inputHandler *InputHandler
	renderer     *Renderer
	perf         *perfDebug
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *MailGame) *GameLoop {
	return &GameLoop{
		game:         game,
		inputHandler: NewInputHandler(game.config.Timing.TapTicks),
		renderer:     NewRenderer(game),
		perf:         newPerfDebug(game.config.Display.PerfDebug, game.config.Display.TPS),
	}
}

// Update advances the simulation by one tick
func (gl *GameLoop) Update() error {
	start := time.Now()
	defer func() { gl.perf.lastUpdateDuration = time.Since(start) }()

	// The mirrored mailbox has to exist before anything is drawn
	if !gl.game.sprites.Ready() {
		gl.game.sprites.Prepare()
	}

	gl.inputHandler.HandleWindowKeys()
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		gl.perf.showOverlay = !gl.perf.showOverlay
	}
	gl.game.sim.Update(gl.inputHandler.Sample())
	gl.game.effects.Update()
	gl.maybeLogPerfDrop()
	return nil
}

// Draw composes the frame offscreen then shifts it by the shake and
// landing offsets
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() { gl.perf.lastDrawDuration = time.Since(start) }()

	canvas := gl.game.canvas
	canvas.Clear()
	gl.renderer.Draw(canvas)

	screen.Fill(gl.game.palette.Sky)
	dx, dy := gl.game.effects.Offset()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dx, dy)
	screen.DrawImage(canvas, op)
	gl.drawPerfOverlay(screen)
}

// Layout returns the logical screen dimensions
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gl.game.config.GetScreenWidth(), gl.game.config.GetScreenHeight()
}
