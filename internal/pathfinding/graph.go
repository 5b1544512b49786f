package pathfinding

import "fmt"

// directions lists the 8 neighbor offsets in compass order: N, NE, E, SE,
// S, SW, W, NW. North is +y.
var directions = [8]Point{
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
}

// Graph owns every node of a rectangular grid and its adjacency.
type Graph struct {
	width  int
	height int
	nodes  []Node
}

// NewGraph builds a graph from a terrain-code grid using the default
// terrain weights. See NewGraphWithWeights.
func NewGraph(grid [][]int) (*Graph, error) {
	return NewGraphWithWeights(grid, DefaultTerrainWeights())
}

// NewGraphWithWeights builds a graph from a terrain-code grid indexed as
// grid[y][x]. Every row must have the same length and every value must be
// a TerrainKind code. Adjacency is computed once; later terrain changes
// are not supported.
func NewGraphWithWeights(grid [][]int, weights TerrainWeights) (*Graph, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	height := len(grid)
	width := len(grid[0])

	g := &Graph{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
	}

	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedGrid, y, len(row), width)
		}
		for x, code := range row {
			kind := TerrainKind(code)
			if !kind.IsValid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownTerrain, code, x, y)
			}

			id := g.index(x, y)
			g.nodes[id] = Node{
				X:       x,
				Y:       y,
				Terrain: kind,
				Weight:  weights.Weight(kind),
				id:      id,
			}
		}
	}

	g.linkNeighbors()

	return g, nil
}

// linkNeighbors sets the neighbor list of every walkable node.
func (g *Graph) linkNeighbors() {
	for i := range g.nodes {
		node := &g.nodes[i]
		if !node.IsWalkable() {
			continue
		}

		neighbors := make([]*Node, 0, len(directions))
		for _, dir := range directions {
			nx, ny := node.X+dir.X, node.Y+dir.Y
			if g.IsWalkable(nx, ny) {
				neighbors = append(neighbors, &g.nodes[g.index(nx, ny)])
			}
		}
		node.neighbors = neighbors
	}
}

// Width returns the number of columns.
func (g *Graph) Width() int { return g.width }

// Height returns the number of rows.
func (g *Graph) Height() int { return g.height }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node at (x, y), or nil if out of bounds.
func (g *Graph) Node(x, y int) *Node {
	if !g.IsWithinBounds(x, y) {
		return nil
	}
	return &g.nodes[g.index(x, y)]
}

// NodeAt returns the node at p, or nil if out of bounds.
func (g *Graph) NodeAt(p Point) *Node {
	return g.Node(p.X, p.Y)
}

// IsWithinBounds checks if (x, y) lies inside the grid.
func (g *Graph) IsWithinBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWalkable checks if (x, y) is inside the grid and not blocked.
func (g *Graph) IsWalkable(x, y int) bool {
	if !g.IsWithinBounds(x, y) {
		return false
	}
	return g.nodes[g.index(x, y)].IsWalkable()
}

// CountByTerrain returns the number of nodes of each terrain kind.
func (g *Graph) CountByTerrain() map[TerrainKind]int {
	counts := make(map[TerrainKind]int)
	for i := range g.nodes {
		counts[g.nodes[i].Terrain]++
	}
	return counts
}

func (g *Graph) index(x, y int) int {
	return y*g.width + x
}
