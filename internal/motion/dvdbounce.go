package motion

import (
	"time"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/sprite"
)

// DvdBounce moves diagonally one pixel per step and reflects off the
// playground edges, keeping the whole sprite inside.
type DvdBounce struct {
	loc       core.Location
	right, up bool
	box       bounds
	clock     stepper
}

// NewDvdBounce starts at start (clamped into the playground) heading up and
// to the right.
func NewDvdBounce(start core.Location, playground core.Rect, ext sprite.Extents, now time.Time) *DvdBounce {
	box := boundsFor(playground, ext)
	return &DvdBounce{
		loc:   box.clamp(start.X, start.Y),
		right: true,
		up:    true,
		box:   box,
		clock: stepper{last: now},
	}
}

// Next implements Generator.
func (d *DvdBounce) Next(now time.Time) core.Location {
	if d.clock.due(now) {
		d.right = reflect(d.right, d.loc.X, d.box.minX, d.box.maxX)
		d.up = reflect(d.up, d.loc.Y, d.box.minY, d.box.maxY)
		d.loc = d.box.clamp(d.loc.X+direction(d.right), d.loc.Y+direction(d.up))
	}
	return d.loc
}

func (*DvdBounce) generator() {}

// reflect turns the heading around at an edge. A pet sitting on an edge
// always heads back inside, whatever direction it had.
func reflect(positive bool, pos, lo, hi int) bool {
	switch {
	case pos <= lo:
		return true
	case pos >= hi:
		return false
	default:
		return positive
	}
}
