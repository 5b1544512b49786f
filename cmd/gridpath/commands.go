package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gridpath/internal/config"
	"github.com/Faultbox/gridpath/internal/logger"
	"github.com/Faultbox/gridpath/internal/pathfinding"
	"github.com/Faultbox/gridpath/internal/render"
	"github.com/Faultbox/gridpath/pkg/mapdata"
)

var errNoMap = errors.New("no map file given (use -map or pass it as an argument)")

// workspace is everything a command needs after flags, config and map
// have been loaded.
type workspace struct {
	cfg   *config.Config
	m     *mapdata.Map
	graph *pathfinding.Graph
}

func setup(name string, args []string) (*workspace, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		cfg.Map.Path = fs.Arg(0)
	}
	if cfg.Map.Path == "" {
		return nil, errNoMap
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	m, err := mapdata.Load(cfg.Map.Path)
	if err != nil {
		return nil, err
	}

	graph, err := pathfinding.NewGraphWithWeights(m.Grid(), cfg.TerrainWeights())
	if err != nil {
		return nil, fmt.Errorf("building graph for %s: %w", cfg.Map.Path, err)
	}

	logger.Info("map loaded",
		zap.String("map", m.Name),
		zap.Int("width", graph.Width()),
		zap.Int("height", graph.Height()))

	return &workspace{cfg: cfg, m: m, graph: graph}, nil
}

// endpoints resolves start and target from flags/config, falling back to
// the map's markers, and checks that both are walkable.
func (ws *workspace) endpoints() (start, target pathfinding.Point, err error) {
	start, err = ws.endpoint("start", ws.cfg.Map.Start, ws.m.Start)
	if err != nil {
		return start, target, err
	}
	target, err = ws.endpoint("target", ws.cfg.Map.Target, ws.m.Target)
	return start, target, err
}

func (ws *workspace) endpoint(name string, configured *config.Coord, marker *[2]int) (pathfinding.Point, error) {
	var p pathfinding.Point
	switch {
	case configured != nil:
		p = configured.Point()
	case marker != nil:
		p = pathfinding.Point{X: marker[0], Y: marker[1]}
	default:
		return p, fmt.Errorf("no %s given (use -%s or mark it in the map)", name, name)
	}

	if !ws.graph.IsWithinBounds(p.X, p.Y) {
		return p, fmt.Errorf("%s %s is outside the %dx%d map", name, p, ws.graph.Width(), ws.graph.Height())
	}
	if !ws.graph.IsWalkable(p.X, p.Y) {
		return p, fmt.Errorf("%s %s is blocked", name, p)
	}
	return p, nil
}

func cmdFind(args []string) error {
	defer logger.Sync()
	return runFind(os.Stdout, args)
}

func runFind(w io.Writer, args []string) error {
	ws, err := setup("find", args)
	if err != nil {
		return err
	}

	start, target, err := ws.endpoints()
	if err != nil {
		return err
	}

	opts, err := ws.cfg.SearchOptions()
	if err != nil {
		return err
	}

	pf, err := pathfinding.NewPathfinder(ws.graph, opts)
	if err != nil {
		return err
	}

	res, err := pf.FindPath(start, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Map:        %s (%dx%d)\n", ws.m.Name, ws.graph.Width(), ws.graph.Height())
	fmt.Fprintf(w, "Strategy:   %s", opts.Strategy)
	if opts.Strategy == pathfinding.GreedyBestFirst || opts.Strategy == pathfinding.AStar {
		fmt.Fprintf(w, " (%s)", opts.Heuristic)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Start:      %s\n", start)
	fmt.Fprintf(w, "Target:     %s\n", target)
	fmt.Fprintf(w, "Status:     %s\n", res.Status)
	fmt.Fprintf(w, "Iterations: %d\n", res.Iterations)
	fmt.Fprintf(w, "Explored:   %d\n", len(res.Explored))
	if res.Found() {
		fmt.Fprintf(w, "Path:       %d nodes, cost %.2f\n", len(res.Path), res.Cost)
	} else {
		fmt.Fprintln(w, "Path:       none")
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, render.ASCII(ws.graph, res, start, target))

	return nil
}

func cmdCompare(args []string) error {
	defer logger.Sync()
	return runCompare(os.Stdout, args)
}

func runCompare(w io.Writer, args []string) error {
	ws, err := setup("compare", args)
	if err != nil {
		return err
	}

	start, target, err := ws.endpoints()
	if err != nil {
		return err
	}

	base, err := ws.cfg.SearchOptions()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Map %s (%dx%d), %s -> %s, heuristic %s\n\n",
		ws.m.Name, ws.graph.Width(), ws.graph.Height(), start, target, base.Heuristic)
	fmt.Fprintf(w, "%-20s %-20s %6s %8s %10s %8s\n", "STRATEGY", "STATUS", "NODES", "EXPLORED", "ITERATIONS", "COST")

	for _, strategy := range pathfinding.Strategies() {
		opts := base
		opts.Strategy = strategy

		pf, err := pathfinding.NewPathfinder(ws.graph, opts)
		if err != nil {
			return err
		}
		res, err := pf.FindPath(start, target)
		if err != nil {
			return err
		}

		cost := "-"
		if res.Found() {
			cost = fmt.Sprintf("%.2f", res.Cost)
		}
		fmt.Fprintf(w, "%-20s %-20s %6d %8d %10d %8s\n",
			strategy, res.Status, len(res.Path), len(res.Explored), res.Iterations, cost)
	}

	return nil
}

func cmdInfo(args []string) error {
	defer logger.Sync()
	return runInfo(os.Stdout, args)
}

func runInfo(w io.Writer, args []string) error {
	ws, err := setup("info", args)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Map:     %s\n", ws.m.Name)
	fmt.Fprintf(w, "Size:    %dx%d (%d cells)\n", ws.graph.Width(), ws.graph.Height(), ws.graph.Len())

	weights := ws.cfg.TerrainWeights()
	counts := ws.graph.CountByTerrain()
	fmt.Fprintln(w, "Terrain:")
	for kind := pathfinding.Open; kind <= pathfinding.HeavyTerrain; kind++ {
		if kind == pathfinding.Blocked {
			fmt.Fprintf(w, "  %-14s %6d\n", kind, counts[kind])
			continue
		}
		fmt.Fprintf(w, "  %-14s %6d  weight %.2f\n", kind, counts[kind], weights.Weight(kind))
	}

	if ws.m.Start != nil {
		fmt.Fprintf(w, "Start:   (%d,%d)\n", ws.m.Start[0], ws.m.Start[1])
	}
	if ws.m.Target != nil {
		fmt.Fprintf(w, "Target:  (%d,%d)\n", ws.m.Target[0], ws.m.Target[1])
	}

	return nil
}
