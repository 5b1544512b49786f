// Package pathfinding implements weighted 8-connected grid search with
// breadth-first, Dijkstra, greedy best-first and A* strategies.
package pathfinding

import (
	"fmt"
	"strings"
)

// TerrainKind classifies a grid cell.
type TerrainKind int

// Terrain kinds, in the order used by terrain-code grids.
const (
	Open          TerrainKind = 0
	Blocked       TerrainKind = 1
	LightTerrain  TerrainKind = 2
	MediumTerrain TerrainKind = 3
	HeavyTerrain  TerrainKind = 4
)

// NumTerrainKinds is the number of valid terrain codes.
const NumTerrainKinds = 5

// String returns a human-readable terrain name.
func (k TerrainKind) String() string {
	switch k {
	case Open:
		return "Open"
	case Blocked:
		return "Blocked"
	case LightTerrain:
		return "LightTerrain"
	case MediumTerrain:
		return "MediumTerrain"
	case HeavyTerrain:
		return "HeavyTerrain"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// IsValid returns true for the five known terrain codes.
func (k TerrainKind) IsValid() bool {
	return k >= Open && k <= HeavyTerrain
}

// IsWalkable returns true if a search may enter the cell.
func (k TerrainKind) IsWalkable() bool {
	return k.IsValid() && k != Blocked
}

// ParseTerrainKind converts a terrain name (case-insensitive) to a kind.
func ParseTerrainKind(s string) (TerrainKind, error) {
	for k := Open; k <= HeavyTerrain; k++ {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}

// TerrainWeights holds the additive movement weight of each walkable
// terrain kind. Open terrain always weighs 0.
type TerrainWeights struct {
	Light  float64
	Medium float64
	Heavy  float64
}

// DefaultTerrainWeights returns the stock weights.
func DefaultTerrainWeights() TerrainWeights {
	return TerrainWeights{
		Light:  0.5,
		Medium: 1.0,
		Heavy:  1.5,
	}
}

// Weight returns the movement weight for kind. Blocked and unknown kinds
// have no traversal weight and report -1.
func (w TerrainWeights) Weight(kind TerrainKind) float64 {
	switch kind {
	case Open:
		return 0
	case LightTerrain:
		return w.Light
	case MediumTerrain:
		return w.Medium
	case HeavyTerrain:
		return w.Heavy
	default:
		return -1
	}
}

// Validate rejects negative weights.
func (w TerrainWeights) Validate() error {
	for _, kw := range []struct {
		kind   TerrainKind
		weight float64
	}{
		{LightTerrain, w.Light},
		{MediumTerrain, w.Medium},
		{HeavyTerrain, w.Heavy},
	} {
		if kw.weight < 0 {
			return fmt.Errorf("%w: %s weight %g", ErrInvalidWeight, kw.kind, kw.weight)
		}
	}
	return nil
}
