package main

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var colorBackground = color.NRGBA{R: 40, G: 110, B: 190, A: 255}
var colorPlayArea = color.NRGBA{R: 30, G: 90, B: 160, A: 255}
var colorGround = color.NRGBA{R: 120, G: 180, B: 90, A: 255}
var colorCrate = color.NRGBA{R: 170, G: 110, B: 50, A: 255}
var colorPlayer = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
var colorOutline = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
var colorText = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var colorDebug = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
var colorPlaybackCursor = color.NRGBA{R: 251, G: 150, B: 32, A: 255}

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorBackground)

	game := SubImage(screen, g.gameArea)
	g.DrawTopBar(game)
	g.DrawPlayArea(SubImage(game, PlayAreaRect()))

	if g.enableDebugAreas {
		g.DrawPlaybackControls(SubImage(screen, g.debugArea))
	}
}

func (g *Gui) DrawTopBar(screen *ebiten.Image) {
	var message string
	switch g.state {
	case PlayScreen:
		message = "WASD / arrows: move    R: reset"
	case Playback:
		message = fmt.Sprintf("frame %d / %d    space: pause",
			g.frameIdx, len(g.playthrough.History))
	}
	g.DrawText(SubImage(screen, TopBarRect()), message, true, true, colorText)
}

func (g *Gui) DrawPlayArea(screen *ebiten.Image) {
	screen.Fill(colorPlayArea)

	// Draw the blocks from the lowest level up and, on the same level, from
	// the back to the front, so that closer blocks cover the ones behind them.
	order := make([]int, len(g.world.Blocks))
	for i := range order {
		order[i] = i
	}
	heights := g.visWorld.Heights
	slices.SortStableFunc(order, func(i, j int) int {
		if c := cmp.Compare(heights[i], heights[j]); c != 0 {
			return c
		}
		return cmp.Compare(g.world.Blocks[i].Pos.Z, g.world.Blocks[j].Pos.Z)
	})
	for _, i := range order {
		g.DrawBlock(screen, &g.world.Blocks[i], heights[i])
	}

	g.DrawPlayer(screen, &g.world.Player)

	for _, t := range g.visWorld.Temporary {
		x, y := WorldToPlayArea(t.Pos)
		radius := float32(CellPixelSize/2 + t.Progress()*CellPixelSize/2)
		alpha := uint8(255 * (1 - t.Progress()))
		OutlineCircle(screen, x, y, radius,
			color.NRGBA{R: 230, G: 220, B: 200, A: alpha})
	}
}

// DrawBlock draws b at height, in levels, which is where the VisWorld shows
// it rather than where the World keeps it.
func (g *Gui) DrawBlock(screen *ebiten.Image, b *Block, height float64) {
	c := colorGround
	if b.Kind == Crate {
		c = colorCrate
	}
	// Lower levels are darker.
	c = Shade(c, 0.7+0.3*min(height, 1))

	x, y := CellsToPlayArea(ToCells(b.Pos.X), height, ToCells(b.Pos.Z))
	half := float32(CellPixelSize / 2)
	// The side facing the viewer.
	FillRect(screen, x-half, y+half, CellPixelSize, LevelPixelLift, Shade(c, 0.6))
	// The top.
	FillRect(screen, x-half, y-half, CellPixelSize, CellPixelSize, c)
	OutlineRect(screen, x-half, y-half, CellPixelSize, CellPixelSize, colorOutline)
}

func (g *Gui) DrawPlayer(screen *ebiten.Image, p *Player) {
	x, y := WorldToPlayArea(p.Pos)
	radius := float32(ToCells(PlayerSize) * CellPixelSize / 2)
	FillCircle(screen, x, y, radius, colorPlayer)
}

func (g *Gui) DrawPlaybackControls(screen *ebiten.Image) {
	// Background of playback bar.
	screen.Fill(colorDebug)

	// Play/pause button.
	playbarHeight := screen.Bounds().Dy()
	playButton := SubImage(screen, image.Rect(0, 0, playbarHeight, playbarHeight))
	if g.playbackPaused {
		FillRect(playButton, 10, 10, float32(playbarHeight-20),
			float32(playbarHeight-20), colorPlaybackCursor)
	} else {
		FillCircle(playButton, float32(playbarHeight)/2, float32(playbarHeight)/2,
			float32(playbarHeight)/2-10, colorPlaybackCursor)
	}
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackPlay = playButton.Bounds()

	// Play bar.
	barXMargin := 10
	barX := playbarHeight + barXMargin
	barWidth := screen.Bounds().Dx() - barX - barXMargin
	bar := SubImage(screen, image.Rect(barX, 0, barX+barWidth, playbarHeight))
	bar.Fill(colorPlayArea)
	// Remember the region so that Update() can react when it's clicked.
	g.buttonPlaybackBar = bar.Bounds()

	// Playback bar cursor.
	if len(g.playthrough.History) > 0 {
		factor := float32(g.frameIdx) / float32(len(g.playthrough.History))
		cursorX := factor * float32(bar.Bounds().Dx())
		FillRect(bar, cursorX-4, 0, 8, float32(playbarHeight), colorPlaybackCursor)
	}
}

func (g *Gui) DrawText(screen *ebiten.Image, message string, centerX bool, centerY bool, color color.Color) {
	// The origin of the text is kind of the lower-left corner of its bounds.
	// If you do text.Draw at (x, y), most of the text will appear above y and
	// a little bit under it. To have all the pixels above y, draw at
	// (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(g.defaultFont, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	} else {
		offsetX = 0
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	} else {
		offsetY = 0
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, g.defaultFont, textX, textY, color)
}
