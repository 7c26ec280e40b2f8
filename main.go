package main

import (
	"embed"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It is meant as a unique label for the functionality that a player
// is presented with.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// It also changes for things that don't affect the simulation or the input
// format, like graphics or uploading being enabled or disabled.
const ReleaseVersion = 1

// TicksPerSecond is the fixed rate at which the World is stepped. Drawing
// happens as often as the display allows, independently of this.
const TicksPerSecond = 60

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
)

type Gui struct {
	Config
	world               World
	visWorld            VisWorld
	FSys                FS
	defaultFont         font.Face
	playthrough         Playthrough
	frameIdx            int64
	state               GameState
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	enableDebugAreas    bool
	gameArea            image.Rectangle
	debugArea           image.Rectangle
	buttonPlaybackPlay  image.Rectangle
	buttonPlaybackBar   image.Rectangle
	uploadChannel       chan *Playthrough
	devModeEnabled      bool
}

type Config struct {
	StartState    string  `yaml:"StartState"`
	LevelFile     string  `yaml:"LevelFile"`
	PlaybackFile  string  `yaml:"PlaybackFile"`
	RecordToFile  bool    `yaml:"RecordToFile"`
	RecordingFile string  `yaml:"RecordingFile"`
	LoadTest      bool    `yaml:"LoadTest"`
	TestFile      string  `yaml:"TestFile"`
	PlayerSpeed   int64   `yaml:"PlayerSpeed"`
	Username      string  `yaml:"Username"`
}

func main() {
	ebiten.SetWindowPosition(100, 100)
	ebiten.SetTPS(TicksPerSecond)

	var g Gui
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
		slog.Info("replaying playthrough", "file", g.PlaybackFile,
			"frames", len(g.playthrough.History))
	} else if g.StartState == "Play" {
		g.state = PlayScreen
		g.playthrough = NewPlaythrough(g.LoadLevel(), g.PlayerSpeed)
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.visWorld = NewVisWorld(&g.world)
	slog.Info("world created", "blocks", len(g.world.Blocks),
		"spawn", g.world.Spawn, "id", g.playthrough.Id)

	// A channel size of 10 means the channel will buffer 10 playthroughs
	// before it is full. Resetting the level 10 times faster than the
	// uploads finish is unlikely.
	g.uploadChannel = make(chan *Playthrough, 10)
	go UploadPlaythroughs(g.Username, g.uploadChannel)

	err := ebiten.RunGame(&g)
	Check(err)
}

// UploadPlaythroughs uploads every playthrough it receives until the channel
// is closed. It is meant to run on its own goroutine so that the game doesn't
// wait for the network.
func UploadPlaythroughs(user string, ch <-chan *Playthrough) {
	for p := range ch {
		err := UploadPlaythroughHttp(user, p.ReleaseVersion,
			p.SimulationVersion, p.InputVersion, p.Id, p.Serialize())
		if err != nil {
			slog.Warn("upload failed", "id", p.Id, "err", err)
		}
	}
}
