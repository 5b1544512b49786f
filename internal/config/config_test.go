package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/gridpath/internal/pathfinding"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Search.Strategy != "AStar" {
		t.Errorf("expected strategy AStar, got %s", cfg.Search.Strategy)
	}
	if cfg.Search.Heuristic != "Diagonal" {
		t.Errorf("expected heuristic Diagonal, got %s", cfg.Search.Heuristic)
	}
	if cfg.Search.MaxIterations != 20000 {
		t.Errorf("expected max iterations 20000, got %d", cfg.Search.MaxIterations)
	}
	if cfg.Search.DecreaseKey {
		t.Error("expected decrease_key to be false by default")
	}

	if cfg.Terrain.LightWeight != 0.5 || cfg.Terrain.MediumWeight != 1.0 || cfg.Terrain.HeavyWeight != 1.5 {
		t.Errorf("unexpected terrain weights %+v", cfg.Terrain)
	}

	if cfg.Map.Start != nil || cfg.Map.Target != nil {
		t.Error("expected no default endpoints")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSearchOptions(t *testing.T) {
	cfg := Default()
	cfg.Search.Strategy = "greedy"
	cfg.Search.Heuristic = "chebyshev"
	cfg.Search.MaxIterations = 50
	cfg.Search.DecreaseKey = true

	opts, err := cfg.SearchOptions()
	if err != nil {
		t.Fatalf("SearchOptions failed: %v", err)
	}

	want := pathfinding.Options{
		Strategy:      pathfinding.GreedyBestFirst,
		Heuristic:     pathfinding.Chebyshev,
		MaxIterations: 50,
		DecreaseKey:   true,
	}
	if opts != want {
		t.Errorf("expected %+v, got %+v", want, opts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"strategy", func(c *Config) { c.Search.Strategy = "dfs" }, pathfinding.ErrInvalidStrategy},
		{"heuristic", func(c *Config) { c.Search.Heuristic = "octile" }, pathfinding.ErrInvalidHeuristic},
		{"iterations", func(c *Config) { c.Search.MaxIterations = 0 }, pathfinding.ErrInvalidMaxIterations},
		{"weight", func(c *Config) { c.Terrain.HeavyWeight = -2 }, pathfinding.ErrInvalidWeight},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig wrapper, got %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
search:
  strategy: dijkstra
  heuristic: manhattan
  max_iterations: 500
  decrease_key: true

terrain:
  light_weight: 0.25
  medium_weight: 2
  heavy_weight: 4

map:
  path: maps/forest.txt
  start: {x: 1, y: 2}
  target: {x: 10, y: 12}

logging:
  level: "debug"
  log_file: "search.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Search.Strategy != "dijkstra" {
		t.Errorf("expected strategy dijkstra, got %s", cfg.Search.Strategy)
	}
	if cfg.Search.Heuristic != "manhattan" {
		t.Errorf("expected heuristic manhattan, got %s", cfg.Search.Heuristic)
	}
	if cfg.Search.MaxIterations != 500 {
		t.Errorf("expected max iterations 500, got %d", cfg.Search.MaxIterations)
	}
	if !cfg.Search.DecreaseKey {
		t.Error("expected decrease_key to be true")
	}

	if w := cfg.TerrainWeights(); w.Light != 0.25 || w.Medium != 2 || w.Heavy != 4 {
		t.Errorf("unexpected weights %+v", w)
	}

	if cfg.Map.Path != "maps/forest.txt" {
		t.Errorf("expected map path maps/forest.txt, got %s", cfg.Map.Path)
	}
	if cfg.Map.Start == nil || *cfg.Map.Start != (Coord{X: 1, Y: 2}) {
		t.Errorf("expected start 1,2, got %v", cfg.Map.Start)
	}
	if cfg.Map.Target == nil || *cfg.Map.Target != (Coord{X: 10, Y: 12}) {
		t.Errorf("expected target 10,12, got %v", cfg.Map.Target)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "search.log" {
		t.Errorf("expected log file 'search.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("search:\n  strategy: bfs\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Search.Strategy != "bfs" {
		t.Errorf("expected strategy bfs, got %s", cfg.Search.Strategy)
	}
	// Untouched keys keep their defaults
	if cfg.Search.MaxIterations != 20000 {
		t.Errorf("expected default max iterations, got %d", cfg.Search.MaxIterations)
	}
	if cfg.Terrain.HeavyWeight != 1.5 {
		t.Errorf("expected default heavy weight, got %v", cfg.Terrain.HeavyWeight)
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should load cleanly, got %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      "search:\n  max_iterations: not a number\n  invalid syntax here\n",
		"unknown key": "search:\n  stratgy: bfs\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "gridpath.yaml")
	if err := os.WriteFile(configPath, []byte("search:\n  strategy: bfs\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find gridpath.yaml in current directory")
	}
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return f
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "search flags",
			args: []string{"-strategy", "bfs", "-heuristic", "euclidean", "-max-iterations", "7", "-decrease-key"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Search.Strategy != "bfs" || cfg.Search.Heuristic != "euclidean" {
					t.Errorf("unexpected search config %+v", cfg.Search)
				}
				if cfg.Search.MaxIterations != 7 {
					t.Errorf("expected max iterations 7, got %d", cfg.Search.MaxIterations)
				}
				if !cfg.Search.DecreaseKey {
					t.Error("expected decrease_key with flag")
				}
			},
		},
		{
			name: "map and endpoints",
			args: []string{"-map", "level.txt", "-start", "0,0", "-target", " 4 , 3"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Map.Path != "level.txt" {
					t.Errorf("expected map level.txt, got %s", cfg.Map.Path)
				}
				if cfg.Map.Start == nil || *cfg.Map.Start != (Coord{0, 0}) {
					t.Errorf("expected start 0,0, got %v", cfg.Map.Start)
				}
				if cfg.Map.Target == nil || *cfg.Map.Target != (Coord{4, 3}) {
					t.Errorf("expected target 4,3, got %v", cfg.Map.Target)
				}
			},
		},
		{
			name: "no flags",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Search.Strategy != "AStar" || cfg.Logging.Level != "info" {
					t.Errorf("defaults should be untouched, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := parseFlags(t, tt.args...).apply(cfg); err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsBadCoord(t *testing.T) {
	for _, arg := range []string{"3", "a,b", "1,"} {
		f := parseFlags(t, "-start", arg)
		if err := f.apply(Default()); err == nil {
			t.Errorf("expected error for -start %q", arg)
		}
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
search:
  strategy: dijkstra
  max_iterations: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	f := parseFlags(t, "-config", configPath, "-max-iterations", "1200")
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Flag wins over file
	if cfg.Search.MaxIterations != 1200 {
		t.Errorf("expected max iterations 1200 from flag, got %d", cfg.Search.MaxIterations)
	}
	// File wins over default
	if cfg.Search.Strategy != "dijkstra" {
		t.Errorf("expected strategy dijkstra from file, got %s", cfg.Search.Strategy)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("search:\n  heuristic: octile\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(parseFlags(t, "-config", configPath))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Search.Strategy = "greedy"
	cfg.Map.Start = &Coord{X: 3, Y: 4}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Search.Strategy != "greedy" {
		t.Errorf("expected strategy greedy, got %s", loaded.Search.Strategy)
	}
	if loaded.Map.Start == nil || *loaded.Map.Start != (Coord{3, 4}) {
		t.Errorf("expected start 3,4, got %v", loaded.Map.Start)
	}
}

func TestParseCoord(t *testing.T) {
	c, err := ParseCoord("12,-3")
	if err != nil {
		t.Fatalf("ParseCoord failed: %v", err)
	}
	if c != (Coord{12, -3}) {
		t.Errorf("expected 12,-3, got %v", c)
	}
	if c.String() != "12,-3" {
		t.Errorf("expected string 12,-3, got %s", c.String())
	}
	if c.Point() != (pathfinding.Point{X: 12, Y: -3}) {
		t.Errorf("unexpected point %v", c.Point())
	}
}
