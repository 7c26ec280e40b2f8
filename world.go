package main

import (
	"fmt"
)

// World rules
// - Each block belongs to the cell closest to its position.
// - The player walks on the level above the ground. It can only step to a
// place where there is a block underneath its leading edge, so it never walks
// off the edge of the terrain.
// - Ground blocks don't move. If the player runs into one, its whole move for
// the frame is cancelled.
// - Crates move when the player runs into them, only along the axis on which
// the player moved the most in the current frame.
// - A crate cannot be pushed into another block. If it would overlap another
// block after the push, the push is cancelled and the player stays where it
// was.
// - A crate that was pushed to the edge of its cell and has nothing under it
// falls one level. It moves to its new cell right away, in the same frame.
// Watching it fall is up to the VisWorld.

// SimulationVersion is the version of the rules above, as implemented by
// Step(). Any change to Step() that makes a recorded playthrough play out
// differently must change SimulationVersion.
const SimulationVersion = 2

// DefaultPlayerSpeed is how many units the player moves on an axis in one
// frame.
const DefaultPlayerSpeed = 150

// A pushed crate is considered to be at the edge of a cell when the fraction
// of its position on the push axis is within these limits, in units. The
// values set the feel of the game, don't tune them casually.
const (
	SettleBehind = 50
	SettleAhead  = 950
)

type BlockKind int64

const (
	Ground BlockKind = iota
	Crate
)

func (k BlockKind) Pushable() bool {
	return k == Crate
}

func (k BlockKind) String() string {
	switch k {
	case Ground:
		return "Ground"
	case Crate:
		return "Crate"
	default:
		return fmt.Sprintf("BlockKind(%d)", int64(k))
	}
}

type Block struct {
	Kind    BlockKind
	Pos     Vec3
	Initial Cell
	// TargetY is the level the block belongs to. Pos.Y always matches it.
	TargetY int64
}

type Player struct {
	Pos  Vec3
	Last Vec3 // position at the start of the current frame
}

type World struct {
	Blocks      []Block
	Player      Player
	Spawn       Vec3
	PlayerSpeed int64
}

type PlayerInput struct {
	Left       bool
	Right      bool
	Forward    bool
	Back       bool
	ResetWorld bool
}

func NewBlock(kind BlockKind, pos Cell) Block {
	return Block{
		Kind:    kind,
		Pos:     pos.ToVec(),
		Initial: pos,
		TargetY: pos.Y,
	}
}

// Level returns the level the block occupies for collisions.
func (b *Block) Level() int64 {
	return b.TargetY
}

// Level returns the level the player occupies for collisions. The player's
// height comes from the level geometry, the world never changes it.
func (p *Player) Level() int64 {
	return CellCoord(p.Pos.Y)
}

func NewWorld(l Level, playerSpeed int64) (w World) {
	w.PlayerSpeed = playerSpeed
	w.Blocks = make([]Block, 0, len(l.BlocksParams))
	for _, bp := range l.BlocksParams {
		w.Blocks = append(w.Blocks, NewBlock(bp.Kind, bp.Pos))
	}
	w.Spawn = l.Spawn.ToVec()
	w.Player.Pos = w.Spawn
	w.Player.Last = w.Spawn
	return
}

func NewWorldFromPlaythrough(p Playthrough) World {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't replay this playthrough - we are at "+
			"SimulationVersion %d and playthrough was generated with "+
			"SimulationVersion %d", SimulationVersion, p.SimulationVersion))
	}
	return NewWorld(p.Level, p.PlayerSpeed)
}

// HasBlock checks if any block belongs to the cell (x, y, z). Several blocks
// may belong to the same cell. Cells outside the level are simply empty.
func (w *World) HasBlock(x, y, z int64) bool {
	c := Cell{x, y, z}
	for i := range w.Blocks {
		if w.Blocks[i].Pos.Cell() == c {
			return true
		}
	}
	return false
}

// Reset puts every block back where the level placed it. The player is left
// alone.
func (w *World) Reset() {
	for i := range w.Blocks {
		b := &w.Blocks[i]
		b.Pos = b.Initial.ToVec()
		b.TargetY = b.Initial.Y
	}
}

// Step advances the world by one frame.
func (w *World) Step(input PlayerInput) {
	w.Player.Last = w.Player.Pos

	if input.ResetWorld {
		w.Reset()
		w.Player.Pos = w.Spawn
		w.Player.Last = w.Spawn
		return
	}

	w.MovePlayer(input)
	w.PushBlocks()
}

// MovePlayer moves the player according to the input. Each direction is
// checked on its own, so a diagonal input can succeed on one axis and fail on
// the other.
func (w *World) MovePlayer(input PlayerInput) {
	speed := w.PlayerSpeed
	if input.Right {
		w.tryStep(Vec3{speed, 0, 0})
	}
	if input.Left {
		w.tryStep(Vec3{-speed, 0, 0})
	}
	if input.Back {
		w.tryStep(Vec3{0, 0, speed})
	}
	if input.Forward {
		w.tryStep(Vec3{0, 0, -speed})
	}
}

// tryStep moves the player by step if the cell under the leading edge of the
// player's footprint, at its destination, has a block in it.
func (w *World) tryStep(step Vec3) {
	p := &w.Player
	dest := p.Pos.Plus(step)
	x := LeadingCell(dest.X+Sign(step.X)*PlayerSize/2, step.X)
	z := LeadingCell(dest.Z+Sign(step.Z)*PlayerSize/2, step.Z)
	if w.HasBlock(x, p.Level()-1, z) {
		p.Pos = dest
	}
}

// LeadingCell returns the cell that contains an edge moving in direction dir.
// An edge lying exactly on the boundary between two cells still belongs to
// the cell it is leaving, the same way touching boxes don't intersect. An
// axis without movement uses the closest cell.
func LeadingCell(edge int64, dir int64) int64 {
	if dir > 0 {
		return CeilDiv(edge-Unit/2, Unit)
	}
	if dir < 0 {
		return FloorDiv(edge+Unit/2, Unit)
	}
	return CellCoord(edge)
}
