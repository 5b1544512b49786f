package pathfinding

import "errors"

// Graph construction errors.
var (
	ErrEmptyGrid      = errors.New("empty terrain grid")
	ErrRaggedGrid     = errors.New("terrain grid rows differ in length")
	ErrUnknownTerrain = errors.New("unknown terrain code")
	ErrInvalidWeight  = errors.New("invalid terrain weight")
)

// Search errors.
var (
	ErrInvalidStrategy      = errors.New("invalid search strategy")
	ErrInvalidHeuristic     = errors.New("invalid heuristic")
	ErrInvalidMaxIterations = errors.New("max iterations must be positive")
	ErrInvalidEndpoint      = errors.New("endpoint is out of bounds or blocked")
)
