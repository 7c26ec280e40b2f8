package main

// FallSpeed is how many levels a falling crate descends on screen in one
// frame.
const FallSpeed = 0.1

// LandingEffectNFrames is how long the ring drawn around a crate that just
// landed stays on screen.
const LandingEffectNFrames = 20

// TemporaryEffect represents an effect that appears in one place, runs for a
// while and then it goes away. It doesn't represent an ongoing entity in the
// World, it is a standalone effect, like the dust of a landing crate.
type TemporaryEffect struct {
	Pos         Vec3
	NFrames     int64
	NFramesLeft int64
}

// Progress goes from 0 when the effect starts to 1 when it ends.
func (t *TemporaryEffect) Progress() float64 {
	return 1 - float64(t.NFramesLeft)/float64(t.NFrames)
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects. Draw() relies on
// the information in VisWorld to draw things, just like it relies on World.
//
// VisWorld is meant to be updated right after World, in the Update() function.
// It reads the World but never changes it, so replaying a playthrough gives
// the same World with or without it.
type VisWorld struct {
	// Heights holds the level at which each block of the World is drawn, in
	// the same order as World.Blocks. In the World a crate drops to its new
	// level at once, here it takes a few frames to get there.
	Heights   []float64
	Temporary []*TemporaryEffect
}

func NewVisWorld(w *World) (v VisWorld) {
	v.Heights = make([]float64, len(w.Blocks))
	for i := range w.Blocks {
		v.Heights[i] = ToCells(w.Blocks[i].Pos.Y)
	}
	return v
}

// Falling checks if block i of the World is still on its way down, on
// screen.
func (v *VisWorld) Falling(w *World, i int) bool {
	return v.Heights[i] > ToCells(w.Blocks[i].Pos.Y)
}

func (v *VisWorld) Step(w *World) {
	// Step existing effects.
	for _, t := range v.Temporary {
		t.NFramesLeft--
	}

	// Filter out obsolete effects.
	n := 0
	for i := range v.Temporary {
		if v.Temporary[i].NFramesLeft > 0 {
			v.Temporary[n] = v.Temporary[i]
			n++
		}
	}
	v.Temporary = v.Temporary[:n]

	// Let falling blocks catch up with the World and create landing effects
	// for the ones that got there.
	for i := range w.Blocks {
		b := &w.Blocks[i]
		target := ToCells(b.Pos.Y)
		if v.Heights[i] <= target {
			// A reset can put a block higher, it goes there right away.
			v.Heights[i] = target
			continue
		}

		v.Heights[i] = max(v.Heights[i]-FallSpeed, target)
		if v.Heights[i] == target {
			v.Temporary = append(v.Temporary, &TemporaryEffect{
				Pos:         b.Pos,
				NFrames:     LandingEffectNFrames,
				NFramesLeft: LandingEffectNFrames,
			})
		}
	}
}
