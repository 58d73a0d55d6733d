package graphics

import (
	"image"
	"image/color"
	"image/draw"
)

// Sprite names understood by SpriteManager.
const (
	Truck        = "truck"
	Wall         = "wall"
	Gold         = "gold"
	Mailbox      = "mailbox"
	MailboxRight = "mailbox_right"
	Envelope     = "envelope"
	Clouds       = "clouds"
	WhiteHouse1  = "whitehouse1"
	WhiteHouse2  = "whitehouse2"
	WhiteHouse3  = "whitehouse3"
	City1        = "city1"
	City2        = "city2"
	City3        = "city3"
)

var (
	white    = color.RGBA{240, 240, 235, 255}
	black    = color.RGBA{20, 20, 24, 255}
	blue     = color.RGBA{40, 70, 160, 255}
	red      = color.RGBA{170, 40, 35, 255}
	brick    = color.RGBA{133, 34, 23, 255}
	mortar   = color.RGBA{190, 170, 150, 255}
	goldFill = color.RGBA{240, 196, 40, 255}
	goldEdge = color.RGBA{170, 120, 20, 255}
	steel    = color.RGBA{80, 100, 150, 255}
	cream    = color.RGBA{236, 228, 200, 255}
	glass    = color.RGBA{120, 140, 170, 255}
	dusk     = color.RGBA{70, 80, 110, 255}
)

func fill(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// placeholderArt draws the built-in art for name, or nil for an unknown name.
func placeholderArt(name string) *image.RGBA {
	switch name {
	case Truck:
		return truckArt()
	case Wall:
		return wallArt()
	case Gold:
		return goldArt()
	case Mailbox:
		return mailboxArt()
	case Envelope:
		return envelopeArt()
	case Clouds:
		return cloudArt()
	case WhiteHouse1, WhiteHouse2, WhiteHouse3:
		return whiteHouseArt(int(name[len(name)-1] - '1'))
	case City1, City2, City3:
		return cityArt(int(name[len(name)-1] - '1'))
	}
	return nil
}

// truckArt is two 64x64 frames side by side; the wheels bob between them.
func truckArt() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 64))
	for f := 0; f < 2; f++ {
		ox := f * 64
		fill(img, ox+8, 20, ox+56, 52, white)
		fill(img, ox+8, 12, ox+56, 20, blue)
		fill(img, ox+14, 24, ox+50, 34, glass)
		fill(img, ox+8, 40, ox+56, 44, red)
		wy := 52 + f
		fill(img, ox+10, wy, ox+20, wy+8, black)
		fill(img, ox+44, wy, ox+54, wy+8, black)
	}
	return img
}

func wallArt() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	fill(img, 0, 16, 64, 64, mortar)
	for row := 0; row < 6; row++ {
		y := 16 + row*8
		offset := (row % 2) * 8
		for x := -offset; x < 64; x += 16 {
			fill(img, max(x+1, 0), y+1, min(x+15, 64), y+7, brick)
		}
	}
	return img
}

func goldArt() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			dx, dy := x-16, y-16
			switch d := dx*dx + dy*dy; {
			case d < 100:
				img.Set(x, y, goldFill)
			case d < 144:
				img.Set(x, y, goldEdge)
			}
		}
	}
	return img
}

// mailboxArt has its flag on the right so the flipped copy reads as the
// other side of the road.
func mailboxArt() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	fill(img, 29, 36, 35, 64, black)
	fill(img, 14, 18, 50, 38, steel)
	fill(img, 16, 20, 48, 36, blue)
	fill(img, 50, 12, 53, 30, red)
	fill(img, 53, 12, 60, 18, red)
	return img
}

func envelopeArt() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fill(img, 1, 3, 15, 13, cream)
	for k := 0; k < 7; k++ {
		img.Set(1+k, 3+k, goldEdge)
		img.Set(14-k, 3+k, goldEdge)
	}
	return img
}

// cloudArt is two 64x32 strips stacked vertically, one per frame.
func cloudArt() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	fill(img, 8, 14, 56, 26, white)
	fill(img, 18, 6, 40, 14, white)
	fill(img, 4, 44, 44, 56, white)
	fill(img, 26, 38, 60, 50, white)
	return img
}

// whiteHouseArt is tile k of the three-tile capitol; the middle one
// carries the portico.
func whiteHouseArt(k int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	fill(img, 0, 36, 64, 64, white)
	for x := 4; x < 64; x += 12 {
		fill(img, x, 42, x+6, 52, glass)
	}
	if k == 1 {
		fill(img, 12, 24, 52, 36, white)
		fill(img, 20, 16, 44, 24, white)
		fill(img, 30, 6, 34, 16, red)
	}
	return img
}

// cityArt is tile k of the skyline drawn behind the road.
func cityArt(k int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	heights := [3][4]int{{30, 44, 20, 36}, {50, 26, 40, 56}, {24, 38, 48, 28}}
	for n, h := range heights[k%3] {
		x := n * 16
		fill(img, x+1, 64-h, x+15, 64, dusk)
		for y := 64 - h + 4; y < 60; y += 8 {
			fill(img, x+4, y, x+7, y+3, goldFill)
		}
	}
	return img
}

// FlipHorizontal returns a mirrored copy of src.
func FlipHorizontal(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dx()-1-x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
