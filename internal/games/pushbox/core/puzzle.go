package core

import "fmt"

// MoveKind classifies how a move request was resolved.
type MoveKind int

const (
	Blocked MoveKind = iota // Nothing changed
	Moved                   // Player stepped onto a free cell
	Pushed                  // Player stepped and pushed a block one cell
)

// String returns the kind name.
func (k MoveKind) String() string {
	switch k {
	case Blocked:
		return "Blocked"
	case Moved:
		return "Moved"
	case Pushed:
		return "Pushed"
	default:
		return "Unknown"
	}
}

// MoveOutcome is the result of one ApplyMove call.
type MoveOutcome struct {
	Kind   MoveKind
	Solved bool // Every goal is covered after this move
}

// Changed reports whether the move mutated the puzzle.
func (o MoveOutcome) Changed() bool {
	return o.Kind != Blocked
}

// String formats the outcome, e.g. "Pushed+Solved".
func (o MoveOutcome) String() string {
	if o.Solved {
		return o.Kind.String() + "+Solved"
	}
	return o.Kind.String()
}

// Status is the puzzle lifecycle state.
type Status int

const (
	Playing Status = iota
	Solved
)

// String returns the status name.
func (s Status) String() string {
	if s == Solved {
		return "solved"
	}
	return "playing"
}

// Puzzle owns the grid, the player position and the count of goals still
// waiting for a block. It is not safe for concurrent use; the host holds
// exclusive access.
type Puzzle struct {
	grid      [][]Tile
	rows      int
	cols      int
	player    Pos
	remaining int
	moves     int
	pushes    int
	status    Status
}

// New builds a puzzle from a layout.
func New(l Layout) (*Puzzle, error) {
	grid, player, err := parseLayout(l)
	if err != nil {
		return nil, fmt.Errorf("pushbox: invalid layout: %w", err)
	}

	p := &Puzzle{
		grid:   grid,
		rows:   len(grid),
		cols:   len(grid[0]),
		player: player,
	}
	p.remaining = p.countUncovered()
	return p, nil
}

// NewDefault builds the puzzle from DefaultLayout.
func NewDefault() *Puzzle {
	p, err := New(DefaultLayout)
	if err != nil {
		panic(fmt.Sprintf("pushbox: default layout is invalid: %v", err))
	}
	return p
}

// ApplyMove resolves one move request. A move either fully happens or
// leaves the puzzle untouched; it never fails.
func (p *Puzzle) ApplyMove(dir Direction) MoveOutcome {
	if p.status == Solved || !dir.Valid() {
		return MoveOutcome{Kind: Blocked, Solved: p.status == Solved}
	}

	delta := dir.Delta()
	from := p.player
	target := from.Add(delta)
	if !p.InBounds(target) {
		return MoveOutcome{Kind: Blocked}
	}

	var kind MoveKind
	switch t := p.at(target); {
	case t.IsFree():
		kind = Moved

	case t.HasBlock():
		beyond := target.Add(delta)
		if !p.InBounds(beyond) || !p.at(beyond).IsFree() {
			return MoveOutcome{Kind: Blocked}
		}

		// Block leaves target first, then lands on beyond.
		if t.IsGoal() {
			p.remaining++
		}
		p.set(target, t.vacated())
		if p.at(beyond).IsGoal() {
			p.remaining--
		}
		p.set(beyond, p.at(beyond).withBlock())
		p.pushes++
		kind = Pushed

	default:
		return MoveOutcome{Kind: Blocked}
	}

	p.set(from, p.at(from).vacated())
	p.set(target, p.at(target).withPlayer())
	p.player = target
	p.moves++

	if p.remaining == 0 {
		p.status = Solved
	}
	return MoveOutcome{Kind: kind, Solved: p.status == Solved}
}

// InBounds reports whether pos lies on the grid.
func (p *Puzzle) InBounds(pos Pos) bool {
	return pos.Row >= 0 && pos.Row < p.rows && pos.Col >= 0 && pos.Col < p.cols
}

// At returns the tile at pos, or Empty when pos is off the grid.
func (p *Puzzle) At(pos Pos) Tile {
	if !p.InBounds(pos) {
		return Empty
	}
	return p.at(pos)
}

func (p *Puzzle) at(pos Pos) Tile {
	return p.grid[pos.Row][pos.Col]
}

func (p *Puzzle) set(pos Pos, t Tile) {
	p.grid[pos.Row][pos.Col] = t
}

// countUncovered scans the grid for goal cells without a block.
func (p *Puzzle) countUncovered() int {
	n := 0
	for _, row := range p.grid {
		for _, t := range row {
			if t.IsGoal() && !t.HasBlock() {
				n++
			}
		}
	}
	return n
}

// Rows returns the grid height.
func (p *Puzzle) Rows() int { return p.rows }

// Cols returns the grid width.
func (p *Puzzle) Cols() int { return p.cols }

// Player returns the player position.
func (p *Puzzle) Player() Pos { return p.player }

// RemainingGoals returns the number of goals not yet covered by a block.
func (p *Puzzle) RemainingGoals() int { return p.remaining }

// Moves returns how many moves changed the puzzle so far.
func (p *Puzzle) Moves() int { return p.moves }

// Pushes returns how many of those moves pushed a block.
func (p *Puzzle) Pushes() int { return p.pushes }

// Status returns the lifecycle state.
func (p *Puzzle) Status() Status { return p.status }

// IsSolved reports whether every goal is covered.
func (p *Puzzle) IsSolved() bool { return p.status == Solved }

// Clone returns an independent deep copy.
func (p *Puzzle) Clone() *Puzzle {
	c := *p
	c.grid = p.copyGrid()
	return &c
}

func (p *Puzzle) copyGrid() [][]Tile {
	grid := make([][]Tile, p.rows)
	for r, row := range p.grid {
		grid[r] = make([]Tile, p.cols)
		copy(grid[r], row)
	}
	return grid
}

// Layout encodes the current grid back into layout notation.
func (p *Puzzle) Layout() Layout {
	l := make(Layout, p.rows)
	for r, row := range p.grid {
		runes := make([]rune, p.cols)
		for c, t := range row {
			runes[c] = LayoutGlyph(t)
		}
		l[r] = string(runes)
	}
	return l
}

// Key returns a compact encoding of the grid contents, usable as a map key.
// Two puzzles with equal keys have identical grids and player positions.
func (p *Puzzle) Key() string {
	buf := make([]byte, 0, p.rows*p.cols)
	for _, row := range p.grid {
		for _, t := range row {
			buf = append(buf, byte('0'+t))
		}
	}
	return string(buf)
}
