package game

import (
	"mailtruck/internal/game/keytracker"
	"mailtruck/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler samples keys, touches and the mouse once per tick
type InputHandler struct {
	pointer *keytracker.PointerTracker
	touches []ebiten.TouchID
}

// NewInputHandler creates a new input handler
func NewInputHandler(tapTicks int) *InputHandler {
	return &InputHandler{pointer: keytracker.NewPointerTracker(tapTicks)}
}

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Sample builds the simulation input for this tick
func (ih *InputHandler) Sample() sim.Input {
	down, x := ih.pointerState()
	p := ih.pointer.Step(down, x)

	return sim.Input{
		Left:  anyKeyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyKeyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Jump:  anyKeyPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace),
		Tap:   p.Tap,
		Drag: sim.Drag{
			Active: p.Held,
			Began:  p.Began,
			X:      p.X,
		},
	}
}

// pointerState reports the first touch, or the left mouse button when no
// finger is down. Positions are in logical screen pixels.
func (ih *InputHandler) pointerState() (bool, float64) {
	ih.touches = ebiten.AppendTouchIDs(ih.touches[:0])
	if len(ih.touches) > 0 {
		x, _ := ebiten.TouchPosition(ih.touches[0])
		return true, float64(x)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		return true, float64(x)
	}
	return false, 0
}

// HandleWindowKeys processes keys that act on the window, not the game
func (ih *InputHandler) HandleWindowKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) || inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
