package game

import (
	"fmt"
	"log"
	"time"

	"mailtruck/internal/sim"
	"mailtruck/internal/sprites"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	perfLowFpsDuration = 3 * time.Second
	perfLogInterval    = 3 * time.Second
)

// perfDebug logs sustained frame rate drops and draws an overlay on F3.
type perfDebug struct {
	enabled     bool
	showOverlay bool
	threshold   float64

	lowFpsSince time.Time
	lastPerfLog time.Time

	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
}

func newPerfDebug(enabled bool, tps int) *perfDebug {
	return &perfDebug{enabled: enabled, threshold: float64(tps) * 0.8}
}

// perfSnapshot summarises what the simulation is carrying this frame.
func perfSnapshot(s *sim.Sim) string {
	road := 0
	for i := range s.Registry.Road {
		if s.Registry.Road[i].Active {
			road++
		}
	}
	return fmt.Sprintf("road=%d envelopes=%d golds=%d parts=%d bursts=%d grace=%v",
		road,
		sprites.CountActive(s.Registry.Envelopes),
		sprites.CountActive(s.Registry.UIGolds),
		sprites.CountActive(s.Registry.WallParts),
		s.PendingBursts(),
		s.InGrace(),
	)
}

func (gl *GameLoop) maybeLogPerfDrop() {
	p := gl.perf
	if !p.enabled {
		return
	}

	fps := ebiten.ActualFPS()
	if fps >= p.threshold {
		p.lowFpsSince = time.Time{}
		p.lastPerfLog = time.Time{}
		return
	}

	now := time.Now()
	if p.lowFpsSince.IsZero() {
		p.lowFpsSince = now
		return
	}
	if now.Sub(p.lowFpsSince) < perfLowFpsDuration {
		return
	}
	if !p.lastPerfLog.IsZero() && now.Sub(p.lastPerfLog) < perfLogInterval {
		return
	}

	p.lastPerfLog = now
	log.Printf("[PERF] FPS<%.0f for >=%s | fps=%.1f tps=%.1f update=%.2fms draw=%.2fms %s",
		p.threshold,
		perfLowFpsDuration,
		fps,
		ebiten.ActualTPS(),
		float64(p.lastUpdateDuration.Microseconds())/1000.0,
		float64(p.lastDrawDuration.Microseconds())/1000.0,
		perfSnapshot(gl.game.sim),
	)
}

func (gl *GameLoop) drawPerfOverlay(screen *ebiten.Image) {
	if !gl.perf.showOverlay {
		return
	}
	msg := fmt.Sprintf("FPS %.1f TPS %.1f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), perfSnapshot(gl.game.sim))
	ebitenutil.DebugPrintAt(screen, msg, 2, gl.game.config.GetScreenHeight()-30)
}
