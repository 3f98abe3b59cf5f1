// Package solver finds move sequences that solve a Pushbox puzzle.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"
)

// DefaultLimit bounds how many distinct positions a search may visit.
const DefaultLimit = 200_000

// Search errors.
var (
	ErrUnsolvable  = errors.New("solver: no solution exists")
	ErrSearchLimit = errors.New("solver: search limit reached")
	ErrSolved      = errors.New("solver: puzzle already solved")
)

// Stats describes the work done by a search.
type Stats struct {
	Visited int // Distinct positions expanded
}

// node is one position in the search tree.
type node struct {
	puzzle *core.Puzzle
	parent int // Index into the visited slice, -1 for the root
	dir    core.Direction
}

// Solve runs a breadth-first search from the current position and returns
// the shortest sequence of directions that solves the puzzle. The puzzle
// passed in is never modified. A limit of zero or less uses DefaultLimit.
func Solve(ctx context.Context, start *core.Puzzle, limit int) ([]core.Direction, Stats, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if start.IsSolved() {
		return nil, Stats{}, nil
	}

	// nodes doubles as the FIFO queue; head is the next node to expand.
	nodes := []node{{puzzle: start.Clone(), parent: -1}}
	seen := map[string]struct{}{start.Key(): {}}

	for head := 0; head < len(nodes); head++ {
		if head%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, Stats{Visited: head}, fmt.Errorf("solver: search cancelled: %w", err)
			}
		}
		if len(seen) > limit {
			return nil, Stats{Visited: head}, ErrSearchLimit
		}

		current := nodes[head].puzzle
		for _, dir := range core.Directions {
			next := current.Clone()
			out := next.ApplyMove(dir)
			if !out.Changed() {
				continue
			}

			key := next.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			nodes = append(nodes, node{puzzle: next, parent: head, dir: dir})

			if out.Solved {
				return buildPath(nodes, len(nodes)-1), Stats{Visited: head + 1}, nil
			}
		}
		// Expanded nodes are only needed for their parent links.
		nodes[head].puzzle = nil
	}

	return nil, Stats{Visited: len(nodes)}, ErrUnsolvable
}

// buildPath walks parent links back to the root.
func buildPath(nodes []node, leaf int) []core.Direction {
	var path []core.Direction
	for i := leaf; nodes[i].parent >= 0; i = nodes[i].parent {
		path = append(path, nodes[i].dir)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Hint returns the first move of a shortest solution.
func Hint(ctx context.Context, p *core.Puzzle, limit int) (core.Direction, error) {
	path, _, err := Solve(ctx, p, limit)
	if err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return 0, ErrSolved
	}
	return path[0], nil
}
