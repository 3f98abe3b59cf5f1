package core

import "strings"

// Snapshot is a read-only copy of the puzzle for display.
type Snapshot struct {
	Grid           [][]Tile
	Player         Pos
	RemainingGoals int
	Moves          int
	Pushes         int
	Status         Status
}

// Snapshot returns a deep copy of the current state.
func (p *Puzzle) Snapshot() Snapshot {
	return Snapshot{
		Grid:           p.copyGrid(),
		Player:         p.player,
		RemainingGoals: p.remaining,
		Moves:          p.moves,
		Pushes:         p.pushes,
		Status:         p.status,
	}
}

// Lines returns the grid as one glyph string per row.
func (s Snapshot) Lines() []string {
	lines := make([]string, len(s.Grid))
	for r, row := range s.Grid {
		runes := make([]rune, len(row))
		for c, t := range row {
			runes[c] = t.Glyph()
		}
		lines[r] = string(runes)
	}
	return lines
}

// Text renders the grid framed by '#' borders, one row per line.
func (s Snapshot) Text() string {
	width := 0
	if len(s.Grid) > 0 {
		width = len(s.Grid[0])
	}
	edge := strings.Repeat("#", width+2)

	var sb strings.Builder
	sb.WriteString(edge)
	sb.WriteByte('\n')
	for _, line := range s.Lines() {
		sb.WriteByte('#')
		sb.WriteString(line)
		sb.WriteString("#\n")
	}
	sb.WriteString(edge)
	return sb.String()
}
