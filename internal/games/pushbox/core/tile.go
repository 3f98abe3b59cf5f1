// Package core contains the pure puzzle logic for Pushbox: the tile model,
// move resolution and win detection. It has no dependencies on the platform
// or on Bubble Tea so it can be exercised directly from tests and the solver.
package core

// Tile is the content classification of one grid cell.
type Tile uint8

const (
	Empty Tile = iota
	Block
	BlockOnGoal
	Goal
	Player
	PlayerOnGoal
)

// IsGoal reports whether the cell is a goal, whatever occupies it.
func (t Tile) IsGoal() bool {
	return t == Goal || t == BlockOnGoal || t == PlayerOnGoal
}

// HasBlock reports whether a block sits on the cell.
func (t Tile) HasBlock() bool {
	return t == Block || t == BlockOnGoal
}

// HasPlayer reports whether the player stands on the cell.
func (t Tile) HasPlayer() bool {
	return t == Player || t == PlayerOnGoal
}

// IsFree reports whether the player or a block may enter the cell.
func (t Tile) IsFree() bool {
	return t == Empty || t == Goal
}

// withPlayer returns the tile a free cell becomes when the player enters it.
func (t Tile) withPlayer() Tile {
	if t.IsGoal() {
		return PlayerOnGoal
	}
	return Player
}

// withBlock returns the tile a free cell becomes when a block enters it.
func (t Tile) withBlock() Tile {
	if t.IsGoal() {
		return BlockOnGoal
	}
	return Block
}

// vacated returns what is left behind when the occupant leaves the cell.
func (t Tile) vacated() Tile {
	if t.IsGoal() {
		return Goal
	}
	return Empty
}

// Glyph returns the single-character display symbol for the tile.
// Block and BlockOnGoal share a glyph, as do Player and PlayerOnGoal.
func (t Tile) Glyph() rune {
	switch t {
	case Empty:
		return ' '
	case Block, BlockOnGoal:
		return 'o'
	case Goal:
		return '.'
	case Player, PlayerOnGoal:
		return 'p'
	default:
		return '?'
	}
}

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Block:
		return "Block"
	case BlockOnGoal:
		return "BlockOnGoal"
	case Goal:
		return "Goal"
	case Player:
		return "Player"
	case PlayerOnGoal:
		return "PlayerOnGoal"
	default:
		return "Unknown"
	}
}
