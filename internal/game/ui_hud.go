package game

import (
	"fmt"
	"image/color"

	"mailtruck/internal/mathutil"
	"mailtruck/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// textLine is one line of screen text, positioned in padding units
type textLine struct {
	text   string
	x, y   float64
	prompt bool // flashes and gets a drop shadow
}

func titleLines(pad, row float64) []textLine {
	return []textLine{
		{text: "VOTE BY MAIL:", x: pad + 10*pad, y: pad},
		{text: "FUNDING NOT FOUND", x: pad + 4*pad, y: row},
		{text: "TAP OR PRESS KEY", x: 8 * pad, y: 40 * pad, prompt: true},
		{text: "TO PLAY", x: 24 * pad, y: 40*pad + row, prompt: true},
	}
}

func gameOverHeadline(reason sim.GameOverReason) string {
	if reason == sim.OutOfFunds {
		return "RAN OUT OF FUNDS"
	}
	return "IT IS ELECTION DAY"
}

func gameOverLines(vars *sim.GameVars, pad, row float64) []textLine {
	lines := []textLine{
		{text: gameOverHeadline(vars.GameOverReason), x: 2 * pad, y: pad},
		{text: fmt.Sprintf("YOU GOT %d BALLOTS", vars.Ballots), x: 2 * pad, y: 2 * row},
		{text: "VOTING IS GOOD", x: 2 * pad, y: 4 * row},
	}
	if vars.ReadyToRestart {
		lines = append(lines,
			textLine{text: "TAP OR PRESS KEY", x: 8 * pad, y: 40 * pad, prompt: true},
			textLine{text: "TO PLAY AGAIN", x: 12 * pad, y: 40*pad + row, prompt: true},
		)
	}
	return lines
}

func (r *Renderer) drawLines(screen *ebiten.Image, lines []textLine) {
	alpha := r.game.sim.InstructionsAlpha
	for _, l := range lines {
		if !l.prompt {
			r.drawText(screen, r.game.titleFace, l.text, l.x, l.y, r.game.palette.Text, 1)
			continue
		}
		r.drawText(screen, r.game.titleFace, l.text, l.x+1, l.y+1, r.game.palette.Shadow, alpha)
		r.drawText(screen, r.game.titleFace, l.text, l.x, l.y, r.game.palette.Text, alpha)
	}
}

func (r *Renderer) drawTitle(screen *ebiten.Image) {
	r.drawLines(screen, titleLines(float64(r.game.config.UI.Padding), r.game.config.GetSecondRowY()))
}

func (r *Renderer) drawGameOver(screen *ebiten.Image) {
	r.drawLines(screen, gameOverLines(&r.game.sim.Vars, float64(r.game.config.UI.Padding), r.game.config.GetSecondRowY()))
}

// drawHUD draws the ballot counter, the countdown and the funding meter
func (r *Renderer) drawHUD(screen *ebiten.Image) {
	cfg := r.game.config
	s := r.game.sim
	pad := float64(cfg.UI.Padding)
	fontSize := float64(cfg.UI.FontSize)
	row := cfg.GetSecondRowY()
	ink := r.game.palette.Text

	r.drawText(screen, r.game.hudFace, mathutil.Pad3(s.Vars.Ballots)+" BALLOTS", pad, pad, ink, 1)
	r.drawText(screen, r.game.hudFace, mathutil.Pad3(s.Vars.TimeLeft), float64(cfg.GetScreenWidth())-3*(fontSize*0.8), pad, ink, 1)

	bar, low := r.game.geom.FundingBar(s.Vars.Funding, cfg.Scoring.StartFunding, cfg.Scoring.LowFunding, pad, row, fontSize)
	fill := r.game.palette.Grass2
	if low {
		fill = r.game.palette.BadFunding
	}
	if bar.W > 0 {
		vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), fill, false)
	}
	r.drawText(screen, r.game.hudFace, "FUNDING", pad, row, ink, 1)
}

// drawText draws str with its top-left corner at x, y, scaled so the line
// height matches the configured font size
func (r *Renderer) drawText(screen *ebiten.Image, face text.Face, str string, x, y float64, c color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	m := face.Metrics()
	lineHeight := m.HAscent + m.HDescent
	scale := 1.0
	if lineHeight > 0 {
		scale = float64(r.game.config.UI.FontSize) / lineHeight
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}
