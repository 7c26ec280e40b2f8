package main

import "fmt"

// Test describes a level block by block. It is meant for hand-made
// situations that are awkward to draw as a text grid, like crates hanging
// over an edge or blocks that don't sit on the ground.
type Test struct {
	Spawn  Cell        `yaml:"Spawn"`
	Blocks []TestBlock `yaml:"Blocks"`
}

type TestBlock struct {
	Kind string `yaml:"Kind"`
	Pos  Cell   `yaml:"Pos"`
}

func (t *Test) GetLevel() (l Level) {
	l.Spawn = t.Spawn
	for _, b := range t.Blocks {
		var bp BlockParams
		switch b.Kind {
		case "ground":
			bp.Kind = Ground
		case "crate":
			bp.Kind = Crate
		default:
			panic(fmt.Errorf("invalid block kind: %s", b.Kind))
		}
		bp.Pos = b.Pos
		l.BlocksParams = append(l.BlocksParams, bp)
	}
	return
}
