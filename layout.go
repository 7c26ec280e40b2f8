package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Visual areas
// ------------
//
// - The play area: where the World is drawn, seen from above. Has a fixed
// size, known at compile time.
// - The game area: the play area plus the top bar. Has a fixed size, known at
// compile time.
// - The debug area: a strip under the game area with the playback controls.
// Its size is known at compile time but the decision to display it or not
// happens at runtime.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

// CellPixelSize is the size in pixels of one cell of the grid.
const CellPixelSize = 64

// LevelPixelLift is how many pixels higher a block is drawn for each level
// it is above the ground. It is what gives the view some depth.
const LevelPixelLift = 16

const PlayCols = 14
const PlayRows = 10
const PlayAreaWidth = PlayCols * CellPixelSize
const PlayAreaHeight = PlayRows*CellPixelSize + LevelPixelLift

const TopBarHeight = 60
const PlayMargin = 20
const GameWidth = PlayAreaWidth + 2*PlayMargin
const GameHeight = TopBarHeight + PlayAreaHeight + 2*PlayMargin
const DebugHeight = 60

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height and I
	// return the size I want for the screen bitmap. Ebitengine scales that
	// bitmap to fit the window and preserves its aspect ratio.
	//
	// What I want:
	// - A fixed game area that I can reason about easily, no matter the
	// aspect ratio or the resolution of the window.
	// - A screen with the same aspect ratio as the window, so that the
	// background covers the whole window.
	// - The game area as large as possible inside the screen.
	gameWidth := GameWidth
	gameHeight := GameHeight
	if g.enableDebugAreas {
		gameHeight += DebugHeight
	}

	// The aspect ratio of a rectangle is width / height. If the screen is
	// thinner than the game, the game fills the width of the screen and there
	// is space left at the top and the bottom. Otherwise, it fills the height.
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = gameWidth
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = gameHeight
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	// Define the game area relative to the total screen area.
	g.gameArea.Min.X = (screenWidth - gameWidth) / 2
	g.gameArea.Min.Y = (screenHeight - gameHeight) / 2
	g.gameArea.Max.X = g.gameArea.Min.X + GameWidth
	g.gameArea.Max.Y = g.gameArea.Min.Y + GameHeight

	g.debugArea = image.Rect(
		g.gameArea.Min.X,
		g.gameArea.Max.Y,
		g.gameArea.Max.X,
		g.gameArea.Max.Y+DebugHeight)
	return
}

func (g *Gui) UpdateWindowSize() {
	width, height := ebiten.ScreenSizeInFullscreen()
	size := min(width, height) * 8 / 10
	ebiten.SetWindowSize(size*GameWidth/GameHeight, size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Crate Push")
}

// TopBarRect returns the top bar relative to the game area.
func TopBarRect() image.Rectangle {
	return image.Rect(0, 0, GameWidth, TopBarHeight)
}

// PlayAreaRect returns the play area relative to the game area.
func PlayAreaRect() image.Rectangle {
	return image.Rect(
		PlayMargin,
		TopBarHeight+PlayMargin,
		PlayMargin+PlayAreaWidth,
		TopBarHeight+PlayMargin+PlayAreaHeight)
}

// CellsToPlayArea converts a position measured in cells to pixel coordinates
// inside the play area. Cells are centered on integer coordinates, so the
// cell (0, 0, 0) starts at the top-left corner of the play area, pushed down
// by one level of lift so that blocks on level 1 fit as well.
func CellsToPlayArea(cx, cy, cz float64) (x float32, y float32) {
	x = float32((cx + 0.5) * CellPixelSize)
	y = float32((cz+0.5)*CellPixelSize + LevelPixelLift - cy*LevelPixelLift)
	return
}

// WorldToPlayArea converts a world position, in units, to pixel coordinates
// inside the play area.
func WorldToPlayArea(v Vec3) (x float32, y float32) {
	return CellsToPlayArea(ToCells(v.X), ToCells(v.Y), ToCells(v.Z))
}
