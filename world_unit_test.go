package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ground(x, y, z int64) BlockParams {
	return BlockParams{Ground, Cell{x, y, z}}
}

func crate(x, y, z int64) BlockParams {
	return BlockParams{Crate, Cell{x, y, z}}
}

// groundRow returns ground blocks on level 0 for all x in [minX, maxX],
// except for the ones in holes.
func groundRow(z, minX, maxX int64, holes ...int64) (bps []BlockParams) {
	for x := minX; x <= maxX; x++ {
		isHole := false
		for _, h := range holes {
			isHole = isHole || h == x
		}
		if !isHole {
			bps = append(bps, ground(x, 0, z))
		}
	}
	return
}

func newTestWorld(speed int64, spawn Cell, bps ...BlockParams) World {
	return NewWorld(Level{BlocksParams: bps, Spawn: spawn}, speed)
}

func stepN(w *World, input PlayerInput, n int) {
	for i := 0; i < n; i++ {
		w.Step(input)
	}
}

var right = PlayerInput{Right: true}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(250, Cell{0, 1, 0}, ground(0, 0, 0), crate(0, 1, 1))
	require.Equal(t, 2, len(w.Blocks))
	assert.Equal(t, Ground, w.Blocks[0].Kind)
	assert.Equal(t, Crate, w.Blocks[1].Kind)
	assert.Equal(t, Vec3{0, 1000, 1000}, w.Blocks[1].Pos)
	assert.Equal(t, Cell{0, 1, 1}, w.Blocks[1].Initial)
	assert.Equal(t, int64(1), w.Blocks[1].TargetY)
	assert.Equal(t, Vec3{0, 1000, 0}, w.Player.Pos)
	assert.Equal(t, Vec3{0, 1000, 0}, w.Player.Last)
	assert.Equal(t, int64(250), w.PlayerSpeed)
}

func TestNewWorldFromPlaythrough(t *testing.T) {
	p := NewPlaythrough(Level{}, DefaultPlayerSpeed)
	p.SimulationVersion = 25
	require.Panics(t, func() {
		NewWorldFromPlaythrough(p)
	})
	p.SimulationVersion = SimulationVersion
	require.NotPanics(t, func() {
		NewWorldFromPlaythrough(p)
	})
}

func TestHasBlock(t *testing.T) {
	w := newTestWorld(250, Cell{0, 1, 0},
		ground(0, 0, 0), crate(0, 1, 0), ground(2, 0, 1))
	assert.True(t, w.HasBlock(0, 0, 0))
	assert.True(t, w.HasBlock(0, 1, 0))
	assert.True(t, w.HasBlock(2, 0, 1))
	assert.False(t, w.HasBlock(1, 0, 0))
	assert.False(t, w.HasBlock(2, 1, 1))
	assert.False(t, w.HasBlock(0, 2, 0))
	assert.False(t, w.HasBlock(-5, 0, 100))

	// A block in motion belongs to the cell closest to it.
	w.Blocks[1].Pos.X = 499
	assert.True(t, w.HasBlock(0, 1, 0))
	w.Blocks[1].Pos.X = 500
	assert.False(t, w.HasBlock(0, 1, 0))
	assert.True(t, w.HasBlock(1, 1, 0))
}

// occupancy records HasBlock for every cell around the level.
func occupancy(w *World) (cells []bool) {
	for y := int64(-1); y <= 3; y++ {
		for z := int64(-2); z <= 12; z++ {
			for x := int64(-2); x <= 12; x++ {
				cells = append(cells, w.HasBlock(x, y, z))
			}
		}
	}
	return
}

func TestReset_RestoresLayout(t *testing.T) {
	w := NewWorld(LoadLevel(&embeddedFiles, "data/levels/level1.txt"),
		DefaultPlayerSpeed)
	expected := occupancy(&w)

	// Mess up every crate.
	for i := range w.Blocks {
		b := &w.Blocks[i]
		if b.Kind == Crate {
			b.Pos.X += 700
			b.Pos.Z -= 1300
			b.Pos.Y -= 1000
			b.TargetY--
		}
	}
	require.NotEqual(t, expected, occupancy(&w))
	playerPos := Vec3{4200, 1000, 3300}
	w.Player.Pos = playerPos

	w.Reset()
	assert.Equal(t, expected, occupancy(&w))
	for _, b := range w.Blocks {
		assert.Equal(t, b.Initial.ToVec(), b.Pos)
		assert.Equal(t, b.Initial.Y, b.TargetY)
	}
	// Reset only deals with the blocks.
	assert.Equal(t, playerPos, w.Player.Pos)
}

func TestStep_ResetWorld(t *testing.T) {
	w := newTestWorld(250, Cell{1, 1, 0}, append(groundRow(0, 0, 5),
		crate(3, 1, 0))...)
	stepN(&w, right, 8)
	require.NotEqual(t, int64(3000), w.Blocks[6].Pos.X)

	w.Step(PlayerInput{ResetWorld: true})
	assert.Equal(t, Vec3{3000, 1000, 0}, w.Blocks[6].Pos)
	assert.Equal(t, Vec3{1000, 1000, 0}, w.Player.Pos)
	assert.Equal(t, Vec3{1000, 1000, 0}, w.Player.Last)
}

func TestStep_NoInputChangesNothing(t *testing.T) {
	w := NewWorld(LoadLevel(&embeddedFiles, "data/levels/level1.txt"),
		DefaultPlayerSpeed)
	stepN(&w, right, 7)
	stepN(&w, PlayerInput{Back: true}, 3)

	before := w.StateBytes()
	for i := 0; i < 10; i++ {
		w.Step(PlayerInput{})
		assert.Equal(t, before, w.StateBytes())
		assert.Equal(t, w.Player.Pos, w.Player.Last)
	}
}

func TestMovePlayer_NeedsSupport(t *testing.T) {
	w := newTestWorld(250, Cell{0, 1, 0}, groundRow(0, 0, 2)...)

	// The player can go as far as having its edge on the border of the last
	// block, but not further.
	stepN(&w, right, 20)
	assert.Equal(t, Vec3{2250, 1000, 0}, w.Player.Pos)

	stepN(&w, PlayerInput{Left: true}, 20)
	assert.Equal(t, Vec3{-250, 1000, 0}, w.Player.Pos)

	stepN(&w, PlayerInput{Forward: true}, 20)
	assert.Equal(t, Vec3{-250, 1000, -250}, w.Player.Pos)

	stepN(&w, PlayerInput{Back: true}, 20)
	assert.Equal(t, Vec3{-250, 1000, 250}, w.Player.Pos)
}

func TestMovePlayer_AxesAreIndependent(t *testing.T) {
	w := newTestWorld(250, Cell{1, 1, 0}, groundRow(0, 0, 2)...)

	// Moving right is possible, moving back stops at the edge of the row.
	stepN(&w, PlayerInput{Right: true, Back: true}, 3)
	assert.Equal(t, Vec3{1750, 1000, 250}, w.Player.Pos)
}

func TestMovePlayer_OppositeKeysCancel(t *testing.T) {
	w := newTestWorld(250, Cell{1, 1, 0}, groundRow(0, 0, 2)...)
	stepN(&w, PlayerInput{Right: true, Left: true}, 5)
	assert.Equal(t, Vec3{1000, 1000, 0}, w.Player.Pos)
}

func TestPush_ImmovableRevertsBothAxes(t *testing.T) {
	bps := groundRow(0, 0, 3)
	bps = append(bps, groundRow(1, 0, 3)...)
	bps = append(bps, ground(2, 1, 0))
	w := newTestWorld(250, Cell{1, 1, 0}, bps...)

	w.Step(PlayerInput{Right: true, Back: true})
	require.Equal(t, Vec3{1250, 1000, 250}, w.Player.Pos)

	// The player now runs into the stacked ground block. Only the X axis
	// is responsible, but the move on Z is cancelled as well.
	w.Step(PlayerInput{Right: true, Back: true})
	assert.Equal(t, Vec3{1250, 1000, 250}, w.Player.Pos)
	assert.Equal(t, w.Player.Last, w.Player.Pos)
	assert.Equal(t, Vec3{2000, 1000, 0}, w.Blocks[len(w.Blocks)-1].Pos)
}

func TestPush_CrateIntoOpenSpace(t *testing.T) {
	w := newTestWorld(250, Cell{1, 1, 0}, append(groundRow(0, 0, 5),
		crate(3, 1, 0))...)
	c := &w.Blocks[6]

	// Walk up to the crate until touching it.
	stepN(&w, right, 5)
	require.Equal(t, Vec3{2250, 1000, 0}, w.Player.Pos)
	require.Equal(t, Vec3{3000, 1000, 0}, c.Pos)

	// The next step overlaps the crate, so the crate moves by the same amount.
	w.Step(right)
	assert.Equal(t, Vec3{2500, 1000, 0}, w.Player.Pos)
	assert.Equal(t, Vec3{3250, 1000, 0}, c.Pos)
	assert.Equal(t, int64(1), c.TargetY)

	w.Step(right)
	assert.Equal(t, Vec3{2750, 1000, 0}, w.Player.Pos)
	assert.Equal(t, Vec3{3500, 1000, 0}, c.Pos)
}

func TestPush_OnlyAlongDominantAxis(t *testing.T) {
	bps := groundRow(0, 0, 5)
	bps = append(bps, groundRow(1, 0, 5)...)
	bps = append(bps, crate(3, 1, 0))
	w := newTestWorld(250, Cell{2, 1, 0}, bps...)
	c := &w.Blocks[len(w.Blocks)-1]
	w.Player.Pos = Vec3{2250, 1000, 0}

	// A diagonal move moves the same amount on both axes and X wins the tie.
	// The player's move on Z is cancelled.
	w.Step(PlayerInput{Right: true, Back: true})
	assert.Equal(t, Vec3{3250, 1000, 0}, c.Pos)
	assert.Equal(t, Vec3{2500, 1000, 0}, w.Player.Pos)
}

func TestPush_AlongZ(t *testing.T) {
	w := newTestWorld(250, Cell{3, 1, 0},
		ground(3, 0, 0), ground(3, 0, 1), ground(3, 0, 2), crate(3, 1, 1))
	c := &w.Blocks[3]

	back := PlayerInput{Back: true}
	w.Step(back)
	require.Equal(t, Vec3{3000, 1000, 1000}, c.Pos)
	w.Step(back)
	assert.Equal(t, Vec3{3000, 1000, 500}, w.Player.Pos)
	assert.Equal(t, Vec3{3000, 1000, 1250}, c.Pos)
}

func TestPush_CrateIntoCrateIsBlocked(t *testing.T) {
	w := newTestWorld(250, Cell{2, 1, 0}, append(groundRow(0, 0, 5),
		crate(3, 1, 0), crate(4, 1, 0))...)
	near := &w.Blocks[6]
	far := &w.Blocks[7]

	w.Step(right)
	require.Equal(t, Vec3{2250, 1000, 0}, w.Player.Pos)

	for i := 0; i < 5; i++ {
		w.Step(right)
		assert.Equal(t, Vec3{2250, 1000, 0}, w.Player.Pos)
		assert.Equal(t, Vec3{3000, 1000, 0}, near.Pos)
		assert.Equal(t, Vec3{4000, 1000, 0}, far.Pos)
	}
}

func TestPush_CrateIntoStackedGroundIsBlocked(t *testing.T) {
	w := newTestWorld(250, Cell{2, 1, 0}, append(groundRow(0, 0, 5),
		crate(3, 1, 0), ground(4, 1, 0))...)
	stepN(&w, right, 6)
	assert.Equal(t, Vec3{2250, 1000, 0}, w.Player.Pos)
	assert.Equal(t, Vec3{3000, 1000, 0}, w.Blocks[6].Pos)
}

func TestPush_SupportedCrateNeverFalls(t *testing.T) {
	w := newTestWorld(DefaultPlayerSpeed, Cell{1, 1, 0},
		append(groundRow(0, 0, 7), crate(3, 1, 0))...)
	c := &w.Blocks[8]
	for i := 0; i < 40; i++ {
		w.Step(right)
		assert.Equal(t, int64(1), c.TargetY)
		assert.Equal(t, int64(1000), c.Pos.Y)
	}
	assert.Greater(t, c.Pos.X, int64(6000))
}

// The crate hangs over the edge of the only ground block, as if it had been
// pushed there from (3, 1, 2). Pushing it back to a cell boundary makes it
// fall on level 0.
func TestSettle_FallsJustPastBoundary(t *testing.T) {
	w := newTestWorld(250, Cell{2, 1, 2}, ground(2, 0, 2), crate(3, 1, 2))
	c := &w.Blocks[1]
	c.Pos.X = 2750

	w.Step(right)
	assert.Equal(t, int64(2250), w.Player.Pos.X)
	assert.Equal(t, int64(0), c.TargetY)
	assert.Equal(t, Vec3{3000, 0, 2000}, c.Pos)
}

func TestSettle_FallsJustBeforeBoundary(t *testing.T) {
	w := newTestWorld(200, Cell{2, 1, 2}, ground(2, 0, 2), crate(3, 1, 2))
	c := &w.Blocks[1]
	c.Pos.X = 2750

	// 2750 + 200 = 2950, close enough to 3000 to count as being there.
	w.Step(right)
	assert.Equal(t, int64(2200), w.Player.Pos.X)
	assert.Equal(t, int64(0), c.TargetY)
	assert.Equal(t, Vec3{3000, 0, 2000}, c.Pos)
}

func TestSettle_NotCloseToBoundary(t *testing.T) {
	w := newTestWorld(250, Cell{2, 1, 2}, ground(2, 0, 2), crate(3, 1, 2))
	c := &w.Blocks[1]
	c.Pos.X = 2500

	w.Step(right)
	require.Equal(t, int64(2750), c.Pos.X)
	assert.Equal(t, int64(1), c.TargetY)
	assert.Equal(t, int64(1000), c.Pos.Y)
}

func TestSettle_LevelZeroNeverFalls(t *testing.T) {
	w := newTestWorld(250, Cell{0, 1, 0}, crate(4, 0, 0))
	c := &w.Blocks[0]
	w.settleBlock(c, Vec3{X: 250})
	assert.Equal(t, int64(0), c.TargetY)
	assert.Equal(t, Vec3{4000, 0, 0}, c.Pos)
}

func TestSettle_OneLevelPerPush(t *testing.T) {
	w := newTestWorld(250, Cell{0, 1, 0}, crate(4, 3, 0))
	c := &w.Blocks[0]
	w.settleBlock(c, Vec3{X: 250})
	assert.Equal(t, int64(2), c.TargetY)
	assert.Equal(t, Vec3{4000, 2000, 0}, c.Pos)
	w.settleBlock(c, Vec3{X: 250})
	assert.Equal(t, int64(1), c.TargetY)
	assert.Equal(t, Vec3{4000, 1000, 0}, c.Pos)
}

// A fall is over in the frame it happens. The crate is in its new cell right
// away and frames without input don't change anything afterwards.
func TestSettle_CommitsImmediately(t *testing.T) {
	w := newTestWorld(250, Cell{2, 1, 2}, ground(2, 0, 2), crate(3, 1, 2))
	c := &w.Blocks[1]
	c.Pos.X = 2750
	require.True(t, w.HasBlock(3, 1, 2))

	w.Step(right)
	require.Equal(t, int64(0), c.TargetY)
	assert.True(t, w.HasBlock(3, 0, 2))
	assert.False(t, w.HasBlock(3, 1, 2))

	before := w.StateBytes()
	for i := 0; i < 20; i++ {
		w.Step(PlayerInput{})
		assert.Equal(t, before, w.StateBytes())
	}
}

// The crate starts 2 cells from the player and gets pushed toward a hole in
// the ground, at the default speed. Wherever the hole is, the crate
// eventually reaches one of the settle windows above it and falls in.
func TestSettle_DefaultSpeedFallsIntoHole(t *testing.T) {
	for _, offset := range []int64{1, 2, 3, 4, -1, -2, -3, -4} {
		t.Run(fmt.Sprintf("offset %d", offset), func(t *testing.T) {
			var spawn, crateStart Cell
			var input PlayerInput
			if offset > 0 {
				spawn = Cell{0, 1, 0}
				crateStart = Cell{2, 1, 0}
				input.Right = true
			} else {
				spawn = Cell{9, 1, 0}
				crateStart = Cell{7, 1, 0}
				input.Left = true
			}
			hole := crateStart.X + offset

			bps := groundRow(0, 0, 9, hole)
			bps = append(bps, BlockParams{Crate, crateStart})
			w := newTestWorld(DefaultPlayerSpeed, spawn, bps...)
			c := &w.Blocks[len(w.Blocks)-1]

			stepN(&w, input, 80)
			assert.Equal(t, int64(0), c.TargetY)
			assert.Equal(t, Vec3{hole * Unit, 0, 0}, c.Pos)
		})
	}
}

// A crate that fell into a gap fills it and the player can walk over it,
// without waiting for anything.
func TestFallenCrateSupportsPlayer(t *testing.T) {
	w := newTestWorld(250, Cell{2, 1, 2},
		ground(1, 0, 2), ground(2, 0, 2), crate(3, 1, 2), ground(4, 0, 2))
	c := &w.Blocks[2]
	c.Pos.X = 2750
	w.Step(right)
	require.Equal(t, int64(0), c.TargetY)

	stepN(&w, right, 20)
	assert.Equal(t, int64(4250), w.Player.Pos.X)
}

func TestEdgeCell(t *testing.T) {
	c, ok := edgeCell(3000)
	assert.True(t, ok)
	assert.Equal(t, int64(3), c)

	c, ok = edgeCell(3050)
	assert.True(t, ok)
	assert.Equal(t, int64(3), c)

	c, ok = edgeCell(2950)
	assert.True(t, ok)
	assert.Equal(t, int64(3), c)

	c, ok = edgeCell(-50)
	assert.True(t, ok)
	assert.Equal(t, int64(0), c)

	c, ok = edgeCell(-950)
	assert.True(t, ok)
	assert.Equal(t, int64(-1), c)

	_, ok = edgeCell(2500)
	assert.False(t, ok)
	_, ok = edgeCell(2949)
	assert.False(t, ok)
	_, ok = edgeCell(3051)
	assert.False(t, ok)
}

func TestLeadingCell(t *testing.T) {
	assert.Equal(t, int64(2), LeadingCell(2500, 1))
	assert.Equal(t, int64(3), LeadingCell(2501, 1))
	assert.Equal(t, int64(3), LeadingCell(2500, -1))
	assert.Equal(t, int64(2), LeadingCell(2499, -1))
	assert.Equal(t, int64(3), LeadingCell(2500, 0))
	assert.Equal(t, int64(0), LeadingCell(-500, -1))
	assert.Equal(t, int64(-1), LeadingCell(-501, -1))
}

func BenchmarkStep(b *testing.B) {
	w := NewWorld(LoadLevel(&embeddedFiles, "data/levels/level1.txt"),
		DefaultPlayerSpeed)
	inputs := []PlayerInput{{Right: true}, {Back: true}, {Left: true},
		{Forward: true}}
	i := 0
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		w.Step(inputs[(i/30)%len(inputs)])
		i++
	}
}
