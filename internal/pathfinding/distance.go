package pathfinding

import (
	"fmt"
	"math"
	"strings"
)

// Movement costs for a single grid step.
const (
	StraightCost = 1.0
	DiagonalCost = 1.4
)

// Point is a cell coordinate in the grid.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// HeuristicKind selects the estimate used by greedy best-first and A*.
type HeuristicKind int

// Heuristic kinds.
const (
	Diagonal HeuristicKind = iota
	Manhattan
	Euclidean
	Chebyshev
)

var heuristicNames = [...]string{"Diagonal", "Manhattan", "Euclidean", "Chebyshev"}

// String returns the heuristic name.
func (k HeuristicKind) String() string {
	if k >= 0 && int(k) < len(heuristicNames) {
		return heuristicNames[k]
	}
	return fmt.Sprintf("Unknown(%d)", int(k))
}

// IsValid returns true for the four known heuristics.
func (k HeuristicKind) IsValid() bool {
	return k >= Diagonal && k <= Chebyshev
}

// ParseHeuristicKind converts a heuristic name (case-insensitive) to a kind.
func ParseHeuristicKind(s string) (HeuristicKind, error) {
	for i, name := range heuristicNames {
		if strings.EqualFold(s, name) {
			return HeuristicKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHeuristic, s)
}

// EdgeCost returns the geometric cost of moving between two cells:
// diagonal steps cost DiagonalCost and the remainder StraightCost each.
// Terrain weight is not included.
func EdgeCost(a, b Point) float64 {
	dx, dy := absDelta(a, b)

	diagonal := min(dx, dy)
	straight := max(dx, dy) - diagonal

	return DiagonalCost*float64(diagonal) + StraightCost*float64(straight)
}

// Heuristic estimates the remaining cost from a to b. Unknown kinds
// estimate 0.
func Heuristic(a, b Point, kind HeuristicKind) float64 {
	const (
		d1 = StraightCost
		d2 = DiagonalCost
	)

	ix, iy := absDelta(a, b)
	dx, dy := float64(ix), float64(iy)

	switch kind {
	case Diagonal:
		return d1*(dx+dy) + (d2-2*d1)*math.Min(dx, dy)
	case Manhattan:
		return d1 * (dx + dy)
	case Euclidean:
		return d1 * math.Sqrt(dx*dx+dy*dy)
	case Chebyshev:
		// Equal to d1*max(dx, dy)
		return d1*(dx+dy) + (d1-2*d1)*math.Min(dx, dy)
	default:
		return 0
	}
}

func absDelta(a, b Point) (int, int) {
	return abs(a.X - b.X), abs(a.Y - b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
