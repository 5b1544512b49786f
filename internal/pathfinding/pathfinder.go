package pathfinding

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gridpath/internal/logger"
)

// Strategy selects the search algorithm.
type Strategy int

// Search strategies.
const (
	BreadthFirstSearch Strategy = iota
	Dijkstra
	GreedyBestFirst
	AStar
)

var strategyNames = [...]string{"BreadthFirstSearch", "Dijkstra", "GreedyBestFirst", "AStar"}

// String returns the strategy name.
func (s Strategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Unknown(%d)", int(s))
}

// IsValid returns true for the four known strategies.
func (s Strategy) IsValid() bool {
	return s >= BreadthFirstSearch && s <= AStar
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirstSearch, Dijkstra, GreedyBestFirst, AStar}
}

// ParseStrategy converts a strategy name (case-insensitive) to a Strategy.
// The short forms "bfs", "greedy" and "astar"/"a*" are accepted too.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "bfs", "breadthfirst", "breadthfirstsearch":
		return BreadthFirstSearch, nil
	case "dijkstra":
		return Dijkstra, nil
	case "greedy", "greedybestfirst":
		return GreedyBestFirst, nil
	case "astar", "a*":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// relaxPolicy captures how a strategy treats an edge to a neighbor.
type relaxPolicy struct {
	// firstDiscoveryWins skips neighbors that are already open and
	// overwrites the cost of new ones unconditionally.
	firstDiscoveryWins bool

	// priority computes the open-set priority of a neighbor.
	priority func(s *session, n *Node) float64
}

var policies = [...]relaxPolicy{
	BreadthFirstSearch: {
		firstDiscoveryWins: true,
		priority: func(s *session, n *Node) float64 {
			return float64(len(s.closed))
		},
	},
	Dijkstra: {
		priority: func(s *session, n *Node) float64 {
			return s.costSoFar[n.id]
		},
	},
	GreedyBestFirst: {
		firstDiscoveryWins: true,
		priority: func(s *session, n *Node) float64 {
			return s.heuristic(n)
		},
	},
	AStar: {
		priority: func(s *session, n *Node) float64 {
			return s.costSoFar[n.id] + s.heuristic(n)
		},
	},
}

// Status is the state of a search.
type Status int

// Search states.
const (
	Idle Status = iota
	Searching
	Found
	Exhausted
	IterationCapReached
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Searching:
		return "Searching"
	case Found:
		return "Found"
	case Exhausted:
		return "Exhausted"
	case IterationCapReached:
		return "IterationCapReached"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// DefaultMaxIterations is the iteration cap used by DefaultOptions.
const DefaultMaxIterations = 20000

// Options configures a Pathfinder.
type Options struct {
	Strategy  Strategy
	Heuristic HeuristicKind // ignored by BreadthFirstSearch and Dijkstra

	// MaxIterations bounds the number of nodes popped from the open set.
	MaxIterations int

	// DecreaseKey repositions an open node whose cost improved. When
	// false an improved node keeps the priority it was enqueued with.
	DecreaseKey bool
}

// DefaultOptions returns A* with the diagonal heuristic.
func DefaultOptions() Options {
	return Options{
		Strategy:      AStar,
		Heuristic:     Diagonal,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if !o.Strategy.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidStrategy, int(o.Strategy))
	}
	if !o.Heuristic.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidHeuristic, int(o.Heuristic))
	}
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxIterations, o.MaxIterations)
	}
	return nil
}

// Result is the outcome of one search.
type Result struct {
	Status Status

	// Path runs from start to target inclusive. Empty unless Found.
	Path []Point

	// Explored lists closed nodes in visitation order.
	Explored []Point

	Iterations int

	// Cost is the target's cost so far when Found.
	Cost float64
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.Status == Found }

// Pathfinder runs searches over a graph. A graph supports one search at
// a time; callers sharing a Pathfinder across goroutines must serialize
// FindPath.
type Pathfinder struct {
	graph  *Graph
	opts   Options
	status Status
}

// NewPathfinder creates a pathfinder for g.
func NewPathfinder(g *Graph, opts Options) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrEmptyGrid
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Pathfinder{graph: g, opts: opts, status: Idle}, nil
}

// Graph returns the graph searched by pf.
func (pf *Pathfinder) Graph() *Graph { return pf.graph }

// Options returns the search options.
func (pf *Pathfinder) Options() Options { return pf.opts }

// Status returns the terminal state of the last search, or Idle.
func (pf *Pathfinder) Status() Status { return pf.status }

// FindPath searches from start to target. Endpoints must be in bounds
// and walkable. Running out of nodes or iterations is reported through
// Result.Status, not as an error.
//
// The search stops as soon as the target enters the open set, so the
// returned path follows the target's backpointer at that moment.
func (pf *Pathfinder) FindPath(start, target Point) (*Result, error) {
	startNode, err := pf.endpoint(start)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", start, err)
	}
	targetNode, err := pf.endpoint(target)
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", target, err)
	}

	logger.Debug("search started",
		zap.Stringer("strategy", pf.opts.Strategy),
		zap.Stringer("heuristic", pf.opts.Heuristic),
		zap.Stringer("start", start),
		zap.Stringer("target", target))

	pf.status = Searching
	s := newSession(pf.graph, pf.opts, startNode, targetNode)
	res := &Result{Status: Searching}

	if s.open.Contains(s.target) {
		res.Status = Found
	}

	for res.Status == Searching && s.open.Len() > 0 {
		res.Iterations++

		current := s.open.Dequeue()
		s.close(current)

		for _, neighbor := range current.Neighbors() {
			s.relax(current, neighbor)
		}

		if s.open.Contains(s.target) {
			res.Status = Found
		} else if res.Iterations == pf.opts.MaxIterations {
			res.Status = IterationCapReached
			logger.Warn("iteration cap reached, stopping search",
				zap.Int("max_iterations", pf.opts.MaxIterations),
				zap.Stringer("strategy", pf.opts.Strategy))
		}
	}

	switch res.Status {
	case Searching:
		res.Status = Exhausted
	case Found:
		res.Path = s.reconstruct()
		res.Cost = s.costSoFar[targetNode.id]
	}
	res.Explored = s.explored()
	pf.status = res.Status

	logger.Debug("search finished",
		zap.Stringer("status", res.Status),
		zap.Int("iterations", res.Iterations),
		zap.Int("path_len", len(res.Path)),
		zap.Int("explored", len(res.Explored)))

	return res, nil
}

func (pf *Pathfinder) endpoint(p Point) (*Node, error) {
	if !pf.graph.IsWalkable(p.X, p.Y) {
		return nil, ErrInvalidEndpoint
	}
	return pf.graph.NodeAt(p), nil
}

// FindPath runs a single search on g with the given settings.
func FindPath(g *Graph, start, target Point, strategy Strategy, heuristic HeuristicKind, maxIterations int) (*Result, error) {
	pf, err := NewPathfinder(g, Options{
		Strategy:      strategy,
		Heuristic:     heuristic,
		MaxIterations: maxIterations,
	})
	if err != nil {
		return nil, err
	}
	return pf.FindPath(start, target)
}

// PathCost sums the cost of walking path on g using the same rule as the
// search: each step costs its EdgeCost plus the weight of the node it
// leaves.
func PathCost(g *Graph, path []Point) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		from := g.NodeAt(path[i])
		if from == nil {
			continue
		}
		total += EdgeCost(path[i], path[i+1]) + from.Weight
	}
	return total
}
