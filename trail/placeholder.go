package trail

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

var placeholderPalette = []color.RGBA{
	colornames.Coral,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Steelblue,
	colornames.Orchid,
	colornames.Tomato,
}

// placeholderBorder is the border width in pixels.
const placeholderBorder = 4

// Placeholders builds n solid images with a darker border, standing in for
// photos when no image files are supplied. Sizes below one pixel are raised
// to one. Images too small for a border are a single solid colour.
func Placeholders(n, w, h int) []*ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	images := make([]*ebiten.Image, max(n, 0))
	for i := range images {
		fill := placeholderPalette[i%len(placeholderPalette)]
		img := ebiten.NewImage(w, h)
		if w <= 2*placeholderBorder || h <= 2*placeholderBorder {
			img.Fill(fill)
			images[i] = img
			continue
		}
		img.Fill(shade(fill, 0.6))
		inner := ebiten.NewImage(w-2*placeholderBorder, h-2*placeholderBorder)
		inner.Fill(fill)
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(placeholderBorder, placeholderBorder)
		img.DrawImage(inner, &op)
		inner.Deallocate()
		images[i] = img
	}
	return images
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
