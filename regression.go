package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes()
// they are considered "the same", even though they may be implemented
// differently.
//
// The world is "the same" if it has:
// - the same blocks, in the same order, at the same positions and target
// levels
// - the player at the same position
//
// The VisWorld is left out, falling crates are already at their new level in
// the World.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, int64(len(w.Blocks)))
	for _, b := range w.Blocks {
		Serialize(buf, b.Kind)
		Serialize(buf, b.Pos)
		Serialize(buf, b.TargetY)
	}
	Serialize(buf, w.Player.Pos)
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough. It uses the exact same
// level and player inputs, but the new World implementation.
// - If the RegressionId hasn't changed, the refactoring did not alter the
// playthrough. If it has changed, something in the refactoring is now causing
// the play experience to be different.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
