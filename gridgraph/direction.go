package gridgraph

// Direction is one of the four orthogonal unit moves.
//
// The zero value is Up. Every mapping below is a fixed-size table indexed by
// the direction itself, so there is no unhandled case to fall through to.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// NumDirections is the size of the Direction set.
const NumDirections = 4

// Directions lists every direction in declaration order.
var Directions = [NumDirections]Direction{Up, Down, Left, Right}

var (
	opposites = [NumDirections]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	perpendiculars = [NumDirections][2]Direction{
		Up:    {Left, Right},
		Down:  {Left, Right},
		Left:  {Up, Down},
		Right: {Up, Down},
	}
	deltas = [NumDirections][2]int{
		Up:    {-1, 0},
		Down:  {1, 0},
		Left:  {0, -1},
		Right: {0, 1},
	}
	names = [NumDirections]string{
		Up:    "up",
		Down:  "down",
		Left:  "left",
		Right: "right",
	}
)

// Valid reports whether d is one of Up, Down, Left, Right.
func (d Direction) Valid() bool { return d < NumDirections }

// Opposite returns the reversal of d.
func (d Direction) Opposite() Direction { return opposites[d] }

// Perpendicular returns the two directions at right angles to d.
func (d Direction) Perpendicular() [2]Direction { return perpendiculars[d] }

// Delta returns the (row, col) offset of a single move in direction d.
func (d Direction) Delta() (dRow, dCol int) { return deltas[d][0], deltas[d][1] }

// String implements fmt.Stringer.
func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return names[d]
}

// Between returns the direction of the unit move from a to b.
// ok is false when b is not an orthogonal neighbour of a.
func Between(a, b Position) (d Direction, ok bool) {
	for _, d = range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}
