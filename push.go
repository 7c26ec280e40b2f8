package main

// PushBlocks resolves the overlaps between the player, after it moved, and
// the blocks. The blocks are visited in the order in which the level created
// them. When the player touches two blocks in the same frame, the one that
// comes first is resolved first and the second one sees the outcome of that.
func (w *World) PushBlocks() {
	p := &w.Player
	for i := range w.Blocks {
		b := &w.Blocks[i]
		if !PlayerTouchesBlock(p, b) {
			continue
		}

		if !b.Kind.Pushable() {
			// Cancel the whole move, not just the axis that hit the block.
			p.Pos.X = p.Last.X
			p.Pos.Z = p.Last.Z
			continue
		}

		w.pushBlock(i)
	}
}

// pushBlock moves the block at index idx by the amount the player moved on
// its dominant axis. The player's other axis is cancelled, a push only
// happens along one axis per frame.
func (w *World) pushBlock(idx int) {
	p := &w.Player
	b := &w.Blocks[idx]

	var push Vec3
	d := p.Pos.Minus(p.Last)
	if Abs(d.X) >= Abs(d.Z) {
		push.X = d.X
		p.Pos.Z = p.Last.Z
	} else {
		push.Z = d.Z
		p.Pos.X = p.Last.X
	}

	if push == (Vec3{}) {
		// The player didn't move, so there is nothing to push with.
		return
	}

	b.Pos.Add(push)
	if w.blockCollides(idx) {
		b.Pos.Subtract(push)
		p.Pos.X = p.Last.X
		p.Pos.Z = p.Last.Z
		return
	}

	w.settleBlock(b, push)
}

// blockCollides checks if the block at index idx overlaps any other block on
// its level.
func (w *World) blockCollides(idx int) bool {
	b := &w.Blocks[idx]
	for j := range w.Blocks {
		if j == idx {
			continue
		}
		if BlocksTouch(b, &w.Blocks[j]) {
			return true
		}
	}
	return false
}

// settleBlock checks if a block that was just pushed by push lost its
// support. If it did, the block snaps to its cell and drops one level, all
// in this frame.
func (w *World) settleBlock(b *Block, push Vec3) {
	if b.TargetY <= 0 {
		return
	}

	below := Cell{Y: b.TargetY - 1}
	var ok bool
	if push.X != 0 {
		below.X, ok = edgeCell(b.Pos.X)
		below.Z = CellCoord(b.Pos.Z)
	} else {
		below.Z, ok = edgeCell(b.Pos.Z)
		below.X = CellCoord(b.Pos.X)
	}
	if !ok {
		// The block is between two cells, wait until it reaches one.
		return
	}

	if w.HasBlock(below.X, below.Y, below.Z) {
		return
	}

	b.Pos.X = CellCoord(b.Pos.X) * Unit
	b.Pos.Z = CellCoord(b.Pos.Z) * Unit
	b.TargetY = below.Y
	b.Pos.Y = b.TargetY * Unit
	Assert(b.Pos.Cell() == below)
}

// edgeCell returns the cell a coordinate is about to settle in, if it is
// close enough to a cell boundary. Just past a boundary, that is the cell
// behind it. Just before one, it is the cell ahead.
func edgeCell(v int64) (int64, bool) {
	f := Frac(v)
	if f <= SettleBehind {
		return FloorDiv(v, Unit), true
	}
	if f >= SettleAhead {
		return FloorDiv(v, Unit) + 1, true
	}
	return 0, false
}
