package core

import (
	"errors"
	"fmt"
	"strings"
)

// Layout describes a starting position, one string per row, using the
// conventional Sokoban notation:
//
//	' ' or '-'  empty
//	'.'         goal
//	'$'         block
//	'*'         block on goal
//	'@'         player
//	'+'         player on goal
type Layout []string

// DefaultLayout is the level every session starts from.
var DefaultLayout = Layout{
	" .. @ ",
	" $$   ",
	"      ",
}

// Layout construction errors.
var (
	ErrEmptyLayout     = errors.New("layout has no cells")
	ErrRaggedLayout    = errors.New("layout rows differ in length")
	ErrUnknownGlyph    = errors.New("unknown layout glyph")
	ErrNoPlayer        = errors.New("layout has no player")
	ErrMultiplePlayers = errors.New("layout has more than one player")
	ErrNoGoals         = errors.New("layout has no uncovered goal")
	ErrTooFewBlocks    = errors.New("layout has fewer blocks than goals")
)

var layoutTiles = map[rune]Tile{
	' ': Empty,
	'-': Empty,
	'.': Goal,
	'$': Block,
	'*': BlockOnGoal,
	'@': Player,
	'+': PlayerOnGoal,
}

// LayoutGlyph returns the layout notation character for a tile.
func LayoutGlyph(t Tile) rune {
	switch t {
	case Empty:
		return ' '
	case Block:
		return '$'
	case BlockOnGoal:
		return '*'
	case Goal:
		return '.'
	case Player:
		return '@'
	case PlayerOnGoal:
		return '+'
	default:
		return '?'
	}
}

// parseLayout converts a layout into a grid and validates it.
func parseLayout(l Layout) ([][]Tile, Pos, error) {
	if len(l) == 0 || len(l[0]) == 0 {
		return nil, Pos{}, ErrEmptyLayout
	}

	cols := len([]rune(l[0]))
	grid := make([][]Tile, len(l))
	players := 0
	goals, blocks, uncovered := 0, 0, 0
	var player Pos

	for r, line := range l {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, Pos{}, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(runes), cols, ErrRaggedLayout)
		}

		grid[r] = make([]Tile, cols)
		for c, ch := range runes {
			t, ok := layoutTiles[ch]
			if !ok {
				return nil, Pos{}, fmt.Errorf("%q at (%d,%d): %w", ch, r, c, ErrUnknownGlyph)
			}
			grid[r][c] = t

			if t.HasPlayer() {
				players++
				player = Pos{Row: r, Col: c}
			}
			if t.HasBlock() {
				blocks++
			}
			if t.IsGoal() {
				goals++
				if !t.HasBlock() {
					uncovered++
				}
			}
		}
	}

	switch {
	case players == 0:
		return nil, Pos{}, ErrNoPlayer
	case players > 1:
		return nil, Pos{}, fmt.Errorf("found %d: %w", players, ErrMultiplePlayers)
	case uncovered == 0:
		return nil, Pos{}, ErrNoGoals
	case blocks < goals:
		return nil, Pos{}, fmt.Errorf("%d blocks for %d goals: %w", blocks, goals, ErrTooFewBlocks)
	}

	return grid, player, nil
}

// String renders the layout one row per line.
func (l Layout) String() string {
	return strings.Join(l, "\n")
}
