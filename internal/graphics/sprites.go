package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteManager hands out ebiten images by name, loading
// <dir>/<name>.png when present and generated art otherwise.
type SpriteManager struct {
	dir     string
	sprites map[string]*ebiten.Image
	flipped bool
}

func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:     dir,
		sprites: make(map[string]*ebiten.Image),
	}
}

// Source returns the decoded image for name. A missing file falls back to
// the built-in art; a file that exists but does not decode is an error.
func (sm *SpriteManager) Source(name string) (image.Image, error) {
	if name == MailboxRight {
		src, err := sm.Source(Mailbox)
		if err != nil {
			return nil, err
		}
		return FlipHorizontal(src), nil
	}

	spritePath := filepath.Join(sm.dir, name+".png")
	file, err := os.Open(spritePath)
	if err == nil {
		defer file.Close()
		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode sprite %s: %w", spritePath, err)
		}
		return img, nil
	}

	if art := placeholderArt(name); art != nil {
		return art, nil
	}
	return nil, fmt.Errorf("unknown sprite %q", name)
}

// Prepare builds the mirrored mailbox. It runs once before the first frame
// is drawn; Ready reports whether it has.
func (sm *SpriteManager) Prepare() {
	if sm.flipped {
		return
	}
	sm.GetSprite(MailboxRight)
	sm.flipped = true
}

func (sm *SpriteManager) Ready() bool {
	return sm.flipped
}

func (sm *SpriteManager) GetSprite(name string) *ebiten.Image {
	if sprite, exists := sm.sprites[name]; exists {
		return sprite
	}

	src, err := sm.Source(name)
	if err != nil {
		log.Printf("graphics: %v, using placeholder", err)
		sm.sprites[name] = sm.createPlaceholder()
		return sm.sprites[name]
	}

	sm.sprites[name] = ebiten.NewImageFromImage(src)
	return sm.sprites[name]
}

func (sm *SpriteManager) createPlaceholder() *ebiten.Image {
	img := ebiten.NewImage(16, 16)
	img.Fill(color.RGBA{128, 128, 128, 255}) // Gray for unknown
	return img
}
