package core

// Pos is a (row, col) grid coordinate.
type Pos struct {
	Row, Col int
}

// Add returns the position shifted by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Direction is one of the four cardinal move directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the (row, col) offset of one step in the direction.
func (d Direction) Delta() Pos {
	switch d {
	case Up:
		return Pos{Row: -1}
	case Down:
		return Pos{Row: 1}
	case Left:
		return Pos{Col: -1}
	case Right:
		return Pos{Col: 1}
	default:
		return Pos{}
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Key returns the WASD key conventionally bound to the direction.
func (d Direction) Key() string {
	switch d {
	case Up:
		return "w"
	case Down:
		return "s"
	case Left:
		return "a"
	case Right:
		return "d"
	default:
		return ""
	}
}
