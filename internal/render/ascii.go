// Package render draws search results as text.
package render

import (
	"strings"

	"github.com/Faultbox/gridpath/internal/pathfinding"
)

// Overlay glyphs.
const (
	GlyphStart    = 'S'
	GlyphTarget   = 'T'
	GlyphPath     = '*'
	GlyphExplored = '+'
)

var terrainGlyphs = map[pathfinding.TerrainKind]byte{
	pathfinding.Open:          '.',
	pathfinding.Blocked:       '#',
	pathfinding.LightTerrain:  'l',
	pathfinding.MediumTerrain: 'm',
	pathfinding.HeavyTerrain:  'h',
}

// ASCII renders g with the result overlaid, top row (highest y) first.
// Endpoints win over path cells, which win over explored cells. A nil
// result draws the bare terrain and endpoints.
func ASCII(g *pathfinding.Graph, res *pathfinding.Result, start, target pathfinding.Point) string {
	width, height := g.Width(), g.Height()

	canvas := make([][]byte, height)
	for y := 0; y < height; y++ {
		row := make([]byte, width)
		for x := 0; x < width; x++ {
			row[x] = terrainGlyphs[g.Node(x, y).Terrain]
		}
		canvas[y] = row
	}

	plot := func(p pathfinding.Point, glyph byte) {
		if g.IsWithinBounds(p.X, p.Y) {
			canvas[p.Y][p.X] = glyph
		}
	}

	if res != nil {
		for _, p := range res.Explored {
			plot(p, GlyphExplored)
		}
		for _, p := range res.Path {
			plot(p, GlyphPath)
		}
	}
	plot(start, GlyphStart)
	plot(target, GlyphTarget)

	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for y := height - 1; y >= 0; y-- {
		sb.Write(canvas[y])
		sb.WriteByte('\n')
	}
	return sb.String()
}
