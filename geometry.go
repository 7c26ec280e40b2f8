package main

// BlockSize is the length of a block's edge. Blocks are centered on their
// position, so a block at rest covers exactly one cell.
const BlockSize = Unit

// PlayerSize is the length of the edge of the player's footprint, half a
// cell. This is the player_size of 0.5 the levels were designed with. The
// sizes "0.5 for the player, 1.0 for blocks" are full sizes, not
// half-extents: as half-extents, blocks on neighboring cells would overlap.
// The player is centered on its position as well.
const PlayerSize = Unit / 2

// Box is an axis-aligned footprint on the horizontal plane. Boxes are
// derived from positions whenever they are needed and never stored.
type Box struct {
	Min Vec3
	Max Vec3
}

func BoxAround(center Vec3, size int64) Box {
	half := Vec3{size / 2, 0, size / 2}
	return Box{center.Minus(half), center.Plus(half)}
}

func BlockBox(b *Block) Box {
	return BoxAround(b.Pos, BlockSize)
}

func PlayerBox(p *Player) Box {
	return BoxAround(p.Pos, PlayerSize)
}

// Intersects checks overlap on X and Z. The check is strict so two boxes
// that only share an edge do not intersect. Y is not part of the check,
// levels are compared separately by the callers.
func (b Box) Intersects(other Box) bool {
	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Z < other.Max.Z && b.Max.Z > other.Min.Z
}

// PlayerTouchesBlock checks if the player and the block overlap while being
// on the same level. The player and every block always occupy exactly one
// level, so nothing ever collides across levels.
func PlayerTouchesBlock(p *Player, b *Block) bool {
	return p.Level() == b.Level() && PlayerBox(p).Intersects(BlockBox(b))
}

// BlocksTouch checks if two blocks on the same level overlap.
func BlocksTouch(b1 *Block, b2 *Block) bool {
	return b1.Level() == b2.Level() && BlockBox(b1).Intersects(BlockBox(b2))
}
