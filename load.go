package main

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible.
	previousVal := CheckCrashes
	if g.FSys != FS(&embeddedFiles) {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	if g.PlayerSpeed <= 0 {
		g.PlayerSpeed = DefaultPlayerSpeed
	}

	g.UpdateWindowSize()

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
}

// LoadLevel returns the level selected by the config, either a text grid or
// a test described in YAML.
func (g *Gui) LoadLevel() Level {
	if g.LoadTest {
		var test Test
		LoadYAML(g.FSys, g.TestFile, &test)
		return test.GetLevel()
	}
	return LoadLevel(g.FSys, g.LevelFile)
}
