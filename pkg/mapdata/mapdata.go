// Package mapdata loads terrain maps for the grid pathfinder.
//
// The text format has one line per row, top row first, and one character
// per cell:
//
//	0 or .   open ground
//	1 or #   blocked
//	2 or l   light terrain
//	3 or m   medium terrain
//	4 or h   heavy terrain
//	S, T     start and target markers (open ground)
//
// Lines starting with ';' are comments. Short rows are padded with open
// ground to the width of the widest row.
package mapdata

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Map parsing errors.
var (
	ErrEmptyMap        = errors.New("map has no rows")
	ErrInvalidCell     = errors.New("invalid map cell")
	ErrDuplicateMarker = errors.New("duplicate endpoint marker")
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// Terrain codes, matching the pathfinder's terrain kinds.
const (
	CodeOpen    = 0
	CodeBlocked = 1
	CodeLight   = 2
	CodeMedium  = 3
	CodeHeavy   = 4
)

// glyphs maps the canonical output character of each terrain code.
var glyphs = [...]byte{'.', '#', 'l', 'm', 'h'}

// Map is a parsed terrain map. Cells is indexed as Cells[y][x] with y=0
// at the bottom, so the first line of a text map is the highest row.
type Map struct {
	Name   string
	Width  int
	Height int
	Cells  [][]int

	// Start and Target are set when the map marks them.
	Start  *[2]int
	Target *[2]int
}

// Grid returns the terrain-code grid, indexed grid[y][x].
func (m *Map) Grid() [][]int {
	return m.Cells
}

// At returns the terrain code at (x, y), or -1 if out of bounds.
func (m *Map) At(x, y int) int {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return -1
	}
	return m.Cells[y][x]
}

// decodeCell converts a map character to a terrain code.
func decodeCell(c byte) (int, bool) {
	switch c {
	case '0', '.':
		return CodeOpen, true
	case '1', '#':
		return CodeBlocked, true
	case '2', 'l':
		return CodeLight, true
	case '3', 'm':
		return CodeMedium, true
	case '4', 'h':
		return CodeHeavy, true
	}
	return 0, false
}

// Parse parses a text map.
func Parse(data []byte) (*Map, error) {
	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}

	return fromRows(lines)
}

// fromRows builds a map from rows given top row first.
func fromRows(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if width == 0 {
		return nil, ErrEmptyMap
	}

	m := &Map{
		Width:  width,
		Height: len(rows),
		Cells:  make([][]int, len(rows)),
	}

	for i, row := range rows {
		y := m.Height - 1 - i
		cells := make([]int, width)

		for x := 0; x < len(row); x++ {
			switch row[x] {
			case 'S':
				if m.Start != nil {
					return nil, fmt.Errorf("%w: S at line %d", ErrDuplicateMarker, i+1)
				}
				m.Start = &[2]int{x, y}
				continue
			case 'T':
				if m.Target != nil {
					return nil, fmt.Errorf("%w: T at line %d", ErrDuplicateMarker, i+1)
				}
				m.Target = &[2]int{x, y}
				continue
			}

			code, ok := decodeCell(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrInvalidCell, row[x], i+1, x+1)
			}
			cells[x] = code
		}

		m.Cells[y] = cells
	}

	return m, nil
}

// MarshalText encodes the map in the text format using glyph characters.
// Endpoint markers are written as S and T.
func (m *Map) MarshalText() ([]byte, error) {
	var buf bytes.Buffer

	if m.Name != "" {
		fmt.Fprintf(&buf, "; %s\n", m.Name)
	}

	for y := m.Height - 1; y >= 0; y-- {
		for x := 0; x < m.Width; x++ {
			switch {
			case m.Start != nil && m.Start[0] == x && m.Start[1] == y:
				buf.WriteByte('S')
			case m.Target != nil && m.Target[0] == x && m.Target[1] == y:
				buf.WriteByte('T')
			default:
				code := m.Cells[y][x]
				if code < 0 || code >= len(glyphs) {
					return nil, fmt.Errorf("%w: code %d at (%d,%d)", ErrInvalidCell, code, x, y)
				}
				buf.WriteByte(glyphs[code])
			}
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// Load parses a map file. Files ending in .yaml or .yml use the YAML
// format, .gat files the binary ground altitude table; anything else is
// read as a text map.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}

	var m *Map
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = ParseYAML(data)
	case ".gat":
		m, err = ParseGAT(data)
	default:
		m, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}
