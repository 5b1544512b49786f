package pathfinding

// Node is a single grid cell. All fields are fixed once the owning Graph
// is built; per-search state lives in the search session.
type Node struct {
	X, Y    int
	Terrain TerrainKind
	Weight  float64

	id        int
	neighbors []*Node
}

// ID returns the node's index in its graph.
func (n *Node) ID() int { return n.id }

// Point returns the node's coordinates.
func (n *Node) Point() Point { return Point{X: n.X, Y: n.Y} }

// Neighbors returns the walkable cells adjacent to n, in compass order
// starting at north. Blocked nodes have none. Callers must not modify
// the returned slice.
func (n *Node) Neighbors() []*Node { return n.neighbors }

// IsWalkable returns true if the node can be part of a path.
func (n *Node) IsWalkable() bool { return n.Terrain.IsWalkable() }
