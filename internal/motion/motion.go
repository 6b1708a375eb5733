// Package motion computes where a pet is drawn. Each generator is a small
// state machine that advances at most once per Step and is queried every
// frame.
package motion

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/sprite"
)

// Step is how often a generator changes state.
const Step = 500 * time.Millisecond

// startJitter bounds the random offset of a bouncing pet's start location.
const startJitter = 30

// Generator yields the sprite origin for the current frame. The set of
// generators is closed: EggHop, SmallSteps and DvdBounce.
type Generator interface {
	Next(now time.Time) core.Location
	generator()
}

// stepper gates state changes to one per Step.
type stepper struct {
	last time.Time
}

func (s *stepper) due(now time.Time) bool {
	if now.Sub(s.last) < Step {
		return false
	}
	s.last = now
	return true
}

// For picks the generator for a pet at stage: eggs hop in the middle of the
// playground, babies wander around it and older pets bounce off the walls.
func For(stage pet.GrowthStage, playground core.Rect, ext sprite.Extents, now time.Time, rng *rand.Rand) Generator {
	center := playground.Center()
	switch stage {
	case pet.StageEgg:
		return NewEggHop(center.Translate(-ext.W/2, -ext.H/2), now)
	case pet.StageBaby:
		return NewSmallSteps(center, now)
	default:
		origin := center.Translate(-ext.W/2, -ext.H/2)
		return NewDvdBounce(RandomStart(origin, playground, ext, rng), playground, ext, now)
	}
}

// RandomStart perturbs center by up to ±30 on both axes and clamps the result
// so a sprite of the given extents lies inside the playground.
func RandomStart(center core.Location, playground core.Rect, ext sprite.Extents, rng *rand.Rand) core.Location {
	b := boundsFor(playground, ext)
	x := center.X + rng.Intn(2*startJitter+1) - startJitter
	y := center.Y + rng.Intn(2*startJitter+1) - startJitter
	return b.clamp(x, y)
}

// bounds is the set of legal sprite origins.
type bounds struct {
	minX, maxX int
	minY, maxY int
}

func boundsFor(playground core.Rect, ext sprite.Extents) bounds {
	return bounds{
		minX: playground.Left(),
		maxX: core.Max(playground.Left(), playground.Right()-ext.W),
		minY: playground.Top(),
		maxY: core.Max(playground.Top(), playground.Bottom()-ext.H),
	}
}

func (b bounds) clamp(x, y int) core.Location {
	return core.NewLocation(
		core.Clamp(x, b.minX, b.maxX),
		core.Clamp(y, b.minY, b.maxY),
	)
}
