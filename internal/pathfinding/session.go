package pathfinding

import (
	"math"

	"github.com/Faultbox/gridpath/pkg/pqueue"
)

// noPrevious marks a node without a predecessor.
const noPrevious = -1

// session holds the mutable state of one FindPath call. All per-node
// fields are indexed by Node.ID and dropped when the call returns.
type session struct {
	graph  *Graph
	policy relaxPolicy
	kind   HeuristicKind

	decreaseKey bool

	start  *Node
	target *Node

	costSoFar []float64
	previous  []int
	priority  []float64
	isClosed  []bool

	closed []*Node
	open   pqueue.Queue[*Node]
}

func newSession(g *Graph, opts Options, start, target *Node) *session {
	n := g.Len()
	s := &session{
		graph:       g,
		policy:      policies[opts.Strategy],
		kind:        opts.Heuristic,
		decreaseKey: opts.DecreaseKey,
		start:       start,
		target:      target,
		costSoFar:   make([]float64, n),
		previous:    make([]int, n),
		priority:    make([]float64, n),
		isClosed:    make([]bool, n),
	}

	for i := 0; i < n; i++ {
		s.costSoFar[i] = math.Inf(1)
		s.previous[i] = noPrevious
	}

	less := func(a, b *Node) bool { return s.priority[a.id] < s.priority[b.id] }
	if opts.DecreaseKey {
		s.open = pqueue.NewIndexed(less)
	} else {
		s.open = pqueue.NewHeap(less)
	}

	s.costSoFar[start.id] = 0
	s.open.Enqueue(start)

	return s
}

// close appends node to the closed list unless it is already there.
// Duplicate pops can only happen with a stale heap.
func (s *session) close(node *Node) {
	if s.isClosed[node.id] {
		return
	}
	s.isClosed[node.id] = true
	s.closed = append(s.closed, node)
}

// relax considers the edge current -> neighbor under the active policy.
func (s *session) relax(current, neighbor *Node) {
	if s.isClosed[neighbor.id] {
		return
	}

	open := s.open.Contains(neighbor)
	if open && s.policy.firstDiscoveryWins {
		return
	}

	cost := EdgeCost(current.Point(), neighbor.Point()) + s.costSoFar[current.id] + current.Weight

	improved := false
	if s.policy.firstDiscoveryWins || math.IsInf(s.costSoFar[neighbor.id], 1) || cost < s.costSoFar[neighbor.id] {
		s.costSoFar[neighbor.id] = cost
		s.previous[neighbor.id] = current.id
		improved = true
	}

	switch {
	case !open:
		s.priority[neighbor.id] = s.policy.priority(s, neighbor)
		s.open.Enqueue(neighbor)
	case improved && s.decreaseKey:
		s.priority[neighbor.id] = s.policy.priority(s, neighbor)
		s.open.Fix(neighbor)
	}
}

// heuristic estimates the cost from node to the target.
func (s *session) heuristic(node *Node) float64 {
	return Heuristic(node.Point(), s.target.Point(), s.kind)
}

// reconstruct walks the backpointers from the target to the start.
// It returns nil when the target was never reached.
func (s *session) reconstruct() []Point {
	if s.previous[s.target.id] == noPrevious && s.target != s.start {
		return nil
	}

	var path []Point
	for id := s.target.id; id != noPrevious; id = s.previous[id] {
		path = append(path, s.graph.nodes[id].Point())
	}

	// Reverse path (it's built from target to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *session) explored() []Point {
	points := make([]Point, len(s.closed))
	for i, node := range s.closed {
		points[i] = node.Point()
	}
	return points
}
