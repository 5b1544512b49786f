package config

import (
	"flag"
	"fmt"
)

// Flags holds command-line overrides bound to a flag set.
type Flags struct {
	config        *string
	debug         *bool
	logFile       *string
	mapPath       *string
	strategy      *string
	heuristic     *string
	maxIterations *int
	decreaseKey   *bool
	start         *string
	target        *string
}

// BindFlags registers the config flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		config:        fs.String("config", "", "Path to config file"),
		debug:         fs.Bool("debug", false, "Enable debug logging"),
		logFile:       fs.String("log-file", "", "Write logs to this file"),
		mapPath:       fs.String("map", "", "Path to map file"),
		strategy:      fs.String("strategy", "", "Search strategy: bfs, dijkstra, greedy, astar"),
		heuristic:     fs.String("heuristic", "", "Heuristic: diagonal, manhattan, euclidean, chebyshev"),
		maxIterations: fs.Int("max-iterations", 0, "Iteration safety cap"),
		decreaseKey:   fs.Bool("decrease-key", false, "Reposition open nodes whose cost improves"),
		start:         fs.String("start", "", "Start cell as x,y"),
		target:        fs.String("target", "", "Target cell as x,y"),
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) error {
	if f == nil {
		return nil
	}
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.logFile != "" {
		cfg.Logging.LogFile = *f.logFile
	}
	if *f.mapPath != "" {
		cfg.Map.Path = *f.mapPath
	}
	if *f.strategy != "" {
		cfg.Search.Strategy = *f.strategy
	}
	if *f.heuristic != "" {
		cfg.Search.Heuristic = *f.heuristic
	}
	if *f.maxIterations > 0 {
		cfg.Search.MaxIterations = *f.maxIterations
	}
	if *f.decreaseKey {
		cfg.Search.DecreaseKey = true
	}
	if *f.start != "" {
		c, err := ParseCoord(*f.start)
		if err != nil {
			return fmt.Errorf("-start: %w", err)
		}
		cfg.Map.Start = &c
	}
	if *f.target != "" {
		c, err := ParseCoord(*f.target)
		if err != nil {
			return fmt.Errorf("-target: %w", err)
		}
		cfg.Map.Target = &c
	}
	return nil
}
