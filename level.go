package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
)

// Level file format
// -----------------
//
// A level is a text grid seen from above. Each line is a row along Z and each
// character a column along X:
//
//	#  ground
//	c  ground with a crate on top
//	p  ground, the player starts on top of it
//	2  ground with another ground block stacked on top
//	.  nothing (a space means the same)
//
// The ground is always at level 0. Crates, stacked ground and the player are
// on level 1.

type BlockParams struct {
	Kind BlockKind
	Pos  Cell
}

// Level holds everything needed to create a World. The order of
// BlocksParams is the order in which the World iterates its blocks.
type Level struct {
	BlocksParams []BlockParams
	Spawn        Cell
}

var ErrNoSpawn = errors.New("level has no player spawn")
var ErrManySpawns = errors.New("level has more than one player spawn")

func ParseLevel(data []byte) (l Level, err error) {
	spawns := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for z := int64(0); scanner.Scan(); z++ {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		for x, ch := range line {
			ground := BlockParams{Ground, Cell{int64(x), 0, z}}
			top := Cell{int64(x), 1, z}
			switch ch {
			case '.', ' ':
			case '#':
				l.BlocksParams = append(l.BlocksParams, ground)
			case 'c':
				l.BlocksParams = append(l.BlocksParams, ground,
					BlockParams{Crate, top})
			case '2':
				l.BlocksParams = append(l.BlocksParams, ground,
					BlockParams{Ground, top})
			case 'p':
				l.BlocksParams = append(l.BlocksParams, ground)
				l.Spawn = top
				spawns++
			default:
				return Level{}, fmt.Errorf("invalid character %q at line %d, "+
					"column %d", ch, z+1, x+1)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return Level{}, fmt.Errorf("reading level: %w", err)
	}

	if spawns == 0 {
		return Level{}, ErrNoSpawn
	}
	if spawns > 1 {
		return Level{}, fmt.Errorf("%w: found %d", ErrManySpawns, spawns)
	}
	return l, nil
}

func LoadLevel(fsys FS, name string) Level {
	data, err := fsys.ReadFile(name)
	Check(err)
	l, err := ParseLevel(data)
	if err != nil {
		Check(fmt.Errorf("loading %s: %w", name, err))
	}
	return l
}
