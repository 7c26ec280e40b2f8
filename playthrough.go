package main

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
// An executable can replay any playthrough with the same InputVersion and
// SimulationVersion as the ones in the executable.
const InputVersion = 2

// Playthrough represents all the input sent to a World during the execution
// of a level. Given this input and a compatible simulation, the same output
// should be generated in the end.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Level
	Id          uuid.UUID
	PlayerSpeed int64
	History     []PlayerInput
}

func NewPlaythrough(l Level, playerSpeed int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = ReleaseVersion
	p.Level = l
	p.Id = uuid.New()
	p.PlayerSpeed = playerSpeed
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	SerializeSlice(buf, p.Level.BlocksParams)
	Serialize(buf, p.Level.Spawn)
	Serialize(buf, p.Id)
	Serialize(buf, p.PlayerSpeed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.BlocksParams = slices.Clone(p.BlocksParams)
	clone.History = slices.Clone(p.History)
	return &clone
}

// Replay rewinds to the start of the playthrough and plays its first nFrames
// inputs. The VisWorld plays along, so effects that are still running after
// the last frame are there as well.
func (p *Playthrough) Replay(nFrames int64) (w World, v VisWorld) {
	w = NewWorldFromPlaythrough(*p)
	v = NewVisWorld(&w)
	for i := int64(0); i < nFrames; i++ {
		w.Step(p.History[i])
		v.Step(&w)
	}
	return
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"version %d",
			InputVersion, p.InputVersion))
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	DeserializeSlice(buf, &p.BlocksParams)
	Deserialize(buf, &p.Spawn)
	Deserialize(buf, &p.Id)
	Deserialize(buf, &p.PlayerSpeed)
	DeserializeSlice(buf, &p.History)
	return
}
