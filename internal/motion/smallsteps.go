package motion

import (
	"time"

	"github.com/vovakirdan/tui-pet/internal/core"
)

const (
	smallStepsX      = 10
	smallStepsY      = 2
	smallStepsCenter = 7 // half of the 15x15 baby sprite
)

// SmallSteps walks back and forth around an anchor: ten pixels each way
// horizontally and two vertically, so the path traces a flattened zigzag.
type SmallSteps struct {
	baseX     int // signed; only the final location is clamped
	baseY     int
	dx, dy    int
	right, up bool
	clock     stepper
}

// NewSmallSteps centres a baby sprite on anchor.
func NewSmallSteps(anchor core.Location, now time.Time) *SmallSteps {
	return &SmallSteps{
		baseX: anchor.X - smallStepsCenter,
		baseY: anchor.Y - smallStepsCenter,
		right: true,
		up:    true,
		clock: stepper{last: now},
	}
}

// Next implements Generator.
func (s *SmallSteps) Next(now time.Time) core.Location {
	if s.clock.due(now) {
		if s.dx == smallStepsX || s.dx == -smallStepsX {
			s.right = !s.right
		}
		if s.dy == smallStepsY || s.dy == -smallStepsY {
			s.up = !s.up
		}
		s.dx += direction(s.right)
		s.dy += direction(s.up)
	}
	return core.NewLocation(s.baseX+s.dx, s.baseY+s.dy)
}

func (*SmallSteps) generator() {}

func direction(positive bool) int {
	if positive {
		return 1
	}
	return -1
}
