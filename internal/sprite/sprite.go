// Package sprite holds the pixel-art shapes a pet is drawn with. Only the
// renderer cares about individual pixels; the engine needs a sprite's id and
// extents.
package sprite

import (
	"strings"

	"github.com/vovakirdan/tui-pet/internal/core"
)

// Extents is the size of a sprite in canvas pixels.
type Extents struct {
	W, H int
}

// Sprite is a monochrome bitmap. Rows are stored top to bottom, '#' marks a
// filled pixel and anything else is transparent.
type Sprite struct {
	id    string
	rows  []string
	width int
}

// New builds a sprite from its rows. Short rows are treated as padded with
// transparent pixels.
func New(id string, rows ...string) Sprite {
	w := 0
	for _, r := range rows {
		w = core.Max(w, len(r))
	}
	return Sprite{id: id, rows: rows, width: w}
}

// ID identifies the sprite, e.g. "egg" or "duck".
func (s Sprite) ID() string { return s.id }

// Width returns the sprite width in pixels.
func (s Sprite) Width() int { return s.width }

// Height returns the sprite height in pixels.
func (s Sprite) Height() int { return len(s.rows) }

// Extents returns the sprite's bounding box.
func (s Sprite) Extents() Extents {
	return Extents{W: s.Width(), H: s.Height()}
}

// Filled reports whether the pixel at (x, y) is set. Coordinates are canvas
// style: (0, 0) is the bottom-left corner.
func (s Sprite) Filled(x, y int) bool {
	if x < 0 || y < 0 || y >= len(s.rows) {
		return false
	}
	row := s.rows[len(s.rows)-1-y]
	return x < len(row) && row[x] == '#'
}

// Pixels lists the filled pixels in canvas coordinates.
func (s Sprite) Pixels() []core.Location {
	var px []core.Location
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Filled(x, y) {
				px = append(px, core.Location{X: x, Y: y})
			}
		}
	}
	return px
}

// String renders the sprite as text, mostly for debugging and tests.
func (s Sprite) String() string {
	var b strings.Builder
	for i, r := range s.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.ReplaceAll(r, ".", " "))
	}
	return b.String()
}
