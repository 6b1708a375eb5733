package motion

import (
	"time"

	"github.com/vovakirdan/tui-pet/internal/core"
)

// EggHop toggles between the anchor and one pixel above it.
type EggHop struct {
	anchor   core.Location
	grounded bool
	clock    stepper
}

// NewEggHop starts grounded at anchor.
func NewEggHop(anchor core.Location, now time.Time) *EggHop {
	return &EggHop{
		anchor:   anchor,
		grounded: true,
		clock:    stepper{last: now},
	}
}

// Next implements Generator.
func (e *EggHop) Next(now time.Time) core.Location {
	if e.clock.due(now) {
		e.grounded = !e.grounded
	}
	if e.grounded {
		return e.anchor
	}
	return e.anchor.Translate(0, 1)
}

func (*EggHop) generator() {}
