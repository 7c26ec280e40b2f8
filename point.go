package main

// Unit is the number of position units along the edge of a cell. The world
// logic only deals with integers, so that positions don't drift and thresholds
// like the settle windows are hit exactly, on every machine. Floats only
// appear when drawing.
const Unit = 1000

// Cell is a position in the grid. Y is the level, 0 being the lowest.
type Cell struct {
	X int64 `yaml:"X"`
	Y int64 `yaml:"Y"`
	Z int64 `yaml:"Z"`
}

// ToVec returns the position of the center of the cell.
func (c Cell) ToVec() Vec3 {
	return Vec3{c.X * Unit, c.Y * Unit, c.Z * Unit}
}

// Vec3 is a continuous position, in units. Blocks and the player live
// between cells while they move, and the world only converts their positions
// to cells when it needs to know which cell they belong to.
type Vec3 struct {
	X int64
	Y int64
	Z int64
}

func (v Vec3) Plus(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Minus(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v *Vec3) Add(other Vec3) {
	v.X = v.X + other.X
	v.Y = v.Y + other.Y
	v.Z = v.Z + other.Z
}

func (v *Vec3) Subtract(other Vec3) {
	v.X = v.X - other.X
	v.Y = v.Y - other.Y
	v.Z = v.Z - other.Z
}

// Cell returns the cell whose center is closest to v.
func (v Vec3) Cell() Cell {
	return Cell{CellCoord(v.X), CellCoord(v.Y), CellCoord(v.Z)}
}

// CellCoord converts a coordinate in units to the coordinate of the closest
// cell. Halfway between two cells it rounds away from zero, the same way for
// every coordinate in the game.
func CellCoord(v int64) int64 {
	if v < 0 {
		return -CellCoord(-v)
	}
	return (v + Unit/2) / Unit
}

// FloorDiv divides a by b, rounding toward negative infinity. b must be
// positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// CeilDiv divides a by b, rounding toward positive infinity. b must be
// positive.
func CeilDiv(a, b int64) int64 {
	return -FloorDiv(-a, b)
}

// Frac returns how far v lies past the last cell center at or below it. The
// result is always in [0, Unit), also for negative v.
func Frac(v int64) int64 {
	return v - FloorDiv(v, Unit)*Unit
}

// ToCells converts a coordinate in units to a fractional number of cells.
func ToCells(v int64) float64 {
	return float64(v) / Unit
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	} else {
		return x
	}
}

func Sign(x int64) int64 {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	} else {
		return 0
	}
}
