package main

import (
	"log"

	"mailtruck/internal/audio"
	"mailtruck/internal/config"
	"mailtruck/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	sounds := audio.Setup(cfg)
	defer sounds.Cleanup()

	// Set window properties from config
	scale := cfg.Display.WindowScale
	ebiten.SetWindowSize(cfg.GetScreenWidth()*scale, cfg.GetScreenHeight()*scale)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)

	g := game.NewMailGame(cfg, sounds)
	if err := ebiten.RunGame(game.NewGameLoop(g)); err != nil {
		log.Fatal(err)
	}
}
