// Package config handles gridpath configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/gridpath/internal/pathfinding"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all search settings.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Terrain TerrainConfig `yaml:"terrain"`
	Map     MapConfig     `yaml:"map"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig selects the algorithm and its limits.
type SearchConfig struct {
	Strategy      string `yaml:"strategy"`
	Heuristic     string `yaml:"heuristic"` // Diagonal, Manhattan, Euclidean, Chebyshev
	MaxIterations int    `yaml:"max_iterations"`
	DecreaseKey   bool   `yaml:"decrease_key"`
}

// TerrainConfig holds the movement weight of each terrain kind.
type TerrainConfig struct {
	LightWeight  float64 `yaml:"light_weight"`
	MediumWeight float64 `yaml:"medium_weight"`
	HeavyWeight  float64 `yaml:"heavy_weight"`
}

// MapConfig points at the map file and optional endpoints.
type MapConfig struct {
	Path   string `yaml:"path"`
	Start  *Coord `yaml:"start,omitempty"`
	Target *Coord `yaml:"target,omitempty"`
}

// Coord is a grid coordinate.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point converts c to a pathfinding point.
func (c Coord) Point() pathfinding.Point {
	return pathfinding.Point{X: c.X, Y: c.Y}
}

// String returns the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// ParseCoord parses "x,y".
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("coordinate %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return Coord{X: x, Y: y}, nil
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	weights := pathfinding.DefaultTerrainWeights()
	return &Config{
		Search: SearchConfig{
			Strategy:      pathfinding.AStar.String(),
			Heuristic:     pathfinding.Diagonal.String(),
			MaxIterations: pathfinding.DefaultMaxIterations,
			DecreaseKey:   false,
		},
		Terrain: TerrainConfig{
			LightWeight:  weights.Light,
			MediumWeight: weights.Medium,
			HeavyWeight:  weights.Heavy,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// SearchOptions converts the search section to pathfinder options.
func (c *Config) SearchOptions() (pathfinding.Options, error) {
	strategy, err := pathfinding.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return pathfinding.Options{}, err
	}
	heuristic, err := pathfinding.ParseHeuristicKind(c.Search.Heuristic)
	if err != nil {
		return pathfinding.Options{}, err
	}

	opts := pathfinding.Options{
		Strategy:      strategy,
		Heuristic:     heuristic,
		MaxIterations: c.Search.MaxIterations,
		DecreaseKey:   c.Search.DecreaseKey,
	}
	return opts, opts.Validate()
}

// TerrainWeights converts the terrain section to graph weights.
func (c *Config) TerrainWeights() pathfinding.TerrainWeights {
	return pathfinding.TerrainWeights{
		Light:  c.Terrain.LightWeight,
		Medium: c.Terrain.MediumWeight,
		Heavy:  c.Terrain.HeavyWeight,
	}
}

// Validate checks that the search and terrain settings are usable.
func (c *Config) Validate() error {
	if _, err := c.SearchOptions(); err != nil {
		return fmt.Errorf("%w: search: %w", ErrInvalidConfig, err)
	}
	if err := c.TerrainWeights().Validate(); err != nil {
		return fmt.Errorf("%w: terrain: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging: unknown level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}
