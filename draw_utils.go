package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in a sub-image. I
	// prefer to think in local coordinates when drawing in a region, so
	// translate the rectangle here and do the same in every Draw* function.
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

// FillRect draws a filled rectangle with x and y relative to the top-left
// pixel of screen.
func FillRect(screen *ebiten.Image, x, y, width, height float32, c color.Color) {
	minPt := screen.Bounds().Min
	vector.DrawFilledRect(screen, float32(minPt.X)+x, float32(minPt.Y)+y,
		width, height, c, false)
}

func OutlineRect(screen *ebiten.Image, x, y, width, height float32, c color.Color) {
	minPt := screen.Bounds().Min
	vector.StrokeRect(screen, float32(minPt.X)+x, float32(minPt.Y)+y,
		width, height, 2, c, false)
}

func FillCircle(screen *ebiten.Image, x, y, radius float32, c color.Color) {
	minPt := screen.Bounds().Min
	vector.DrawFilledCircle(screen, float32(minPt.X)+x, float32(minPt.Y)+y,
		radius, c, true)
}

func OutlineCircle(screen *ebiten.Image, x, y, radius float32, c color.Color) {
	minPt := screen.Bounds().Min
	vector.StrokeCircle(screen, float32(minPt.X)+x, float32(minPt.Y)+y,
		radius, 3, c, true)
}

// Shade darkens c by factor, which goes from 0 (black) to 1 (unchanged).
func Shade(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
