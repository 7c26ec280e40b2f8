package main

import (
	"image"
	"log/slog"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	default:
		panic("unhandled default case")
	}

	return nil
}

func (g *Gui) UpdatePlayScreen() {
	// Get the player input.
	var input PlayerInput
	input.Left = g.Pressed(ebiten.KeyA) || g.Pressed(ebiten.KeyArrowLeft)
	input.Right = g.Pressed(ebiten.KeyD) || g.Pressed(ebiten.KeyArrowRight)
	input.Forward = g.Pressed(ebiten.KeyW) || g.Pressed(ebiten.KeyArrowUp)
	input.Back = g.Pressed(ebiten.KeyS) || g.Pressed(ebiten.KeyArrowDown)
	input.ResetWorld = g.JustPressed(ebiten.KeyR)

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	if input.ResetWorld {
		g.UploadCurrentPlaythrough()
	}

	g.world.Step(input)
	g.visWorld.Step(&g.world)
	g.frameIdx++
}

// UploadCurrentPlaythrough hands a copy of the playthrough to the uploader.
// If the uploader is too far behind, the copy is dropped rather than making
// the game wait.
func (g *Gui) UploadCurrentPlaythrough() {
	select {
	case g.uploadChannel <- g.playthrough.Clone():
	default:
		slog.Warn("upload queue full, dropping playthrough",
			"id", g.playthrough.Id)
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func ImageRectContainsPt(r image.Rectangle, pt image.Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

func (g *Gui) JustClicked(button image.Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return ImageRectContainsPt(button, image.Pt(x, y))
}

func (g *Gui) LeftClickPressedOn(button image.Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return ImageRectContainsPt(button, image.Pt(x, y))
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) ||
		g.JustClicked(g.buttonPlaybackPlay)
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		x, _ := ebiten.CursorPosition()
		dx := int64(x - g.buttonPlaybackBar.Min.X)
		targetFrameIdx = dx * nFrames / int64(g.buttonPlaybackBar.Dx())
	}

	if g.Pressed(ebiten.KeyArrowLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyArrowRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyArrowLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyArrowRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = max(targetFrameIdx, 0)
	targetFrameIdx = min(targetFrameIdx, nFrames-1)

	if targetFrameIdx != g.frameIdx {
		g.world, g.visWorld = g.playthrough.Replay(targetFrameIdx)
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(&g.world)

		if g.frameIdx < nFrames-1 {
			g.frameIdx++
		}
	}
}
