// Package pet implements the simulation engine: bounded stats, the growth
// state machine, care actions and the time-driven update that replays
// elapsed wall-clock time in fixed quanta.
//
// Every time-dependent method takes now explicitly; nothing in this package
// reads the wall clock.
package pet

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pet/internal/core"
)

// DefaultStat is the starting value of all four stats.
const DefaultStat = 50

// Cause records which rule of the alive predicate ended a pet's life.
type Cause string

const (
	CauseNone     Cause = ""
	CauseWeakness Cause = "weakness" // food + joy + health fell below 15
	CauseNeglect  Cause = "neglect"  // two or more stats reached 0
	CauseSickness Cause = "sickness" // health reached 0
)

// Stats is a read-only snapshot of the four stats.
type Stats struct {
	Food   int
	Joy    int
	Energy int
	Health int
}

// Pet is the simulated creature. It is not safe for concurrent use; the
// session owns it and mutates it from a single goroutine.
type Pet struct {
	id      string
	name    string
	species string
	color   core.Color

	food   Stat
	joy    Stat
	energy Stat
	health Stat

	stage        GrowthStage
	asleep       bool
	asleepSince  time.Time // zero while awake
	alive        bool
	causeOfDeath Cause

	created time.Time

	// Decay cursors advance by whole quanta, never jump to now.
	lastFoodTick   time.Time
	lastJoyTick    time.Time
	lastEnergyTick time.Time
	lastHealthTick time.Time

	healthDebt time.Duration
}

// New creates an egg with default stats. All cursors start at now.
func New(name, species string, color core.Color, now time.Time) *Pet {
	now = Millis(now)
	return &Pet{
		id:             uuid.NewString(),
		name:           name,
		species:        species,
		color:          color,
		food:           mustStat(DefaultStat),
		joy:            mustStat(DefaultStat),
		energy:         mustStat(DefaultStat),
		health:         mustStat(DefaultStat),
		stage:          StageEgg,
		alive:          true,
		created:        now,
		lastFoodTick:   now,
		lastJoyTick:    now,
		lastEnergyTick: now,
		lastHealthTick: now,
	}
}

// Millis truncates t to whole milliseconds, the resolution of the save file.
func Millis(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli())
}

// ID returns the pet's unique identifier.
func (p *Pet) ID() string { return p.id }

// Name returns the pet's name.
func (p *Pet) Name() string { return p.name }

// Species returns the registry id of the pet's adult form.
func (p *Pet) Species() string { return p.species }

// Color returns the palette entry the pet is drawn in.
func (p *Pet) Color() core.Color { return p.color }

// Stage returns the current growth stage.
func (p *Pet) Stage() GrowthStage { return p.stage }

// Asleep reports whether the pet is sleeping.
func (p *Pet) Asleep() bool { return p.asleep }

// AsleepSince returns when the pet fell asleep and whether it is asleep.
func (p *Pet) AsleepSince() (time.Time, bool) {
	return p.asleepSince, p.asleep
}

// Alive reports whether the pet is alive. Once false it stays false.
func (p *Pet) Alive() bool { return p.alive }

// CauseOfDeath returns why the pet died, or CauseNone.
func (p *Pet) CauseOfDeath() Cause { return p.causeOfDeath }

// Created returns the adoption time.
func (p *Pet) Created() time.Time { return p.created }

// Age returns how long the pet has existed at now.
func (p *Pet) Age(now time.Time) time.Duration {
	age := now.Sub(p.created)
	if age < 0 {
		return 0
	}
	return age
}

// HealthDebt returns the pending health decay owed from eating and playing.
func (p *Pet) HealthDebt() time.Duration { return p.healthDebt }

// Stats returns a snapshot of the four stats.
func (p *Pet) Stats() Stats {
	return Stats{
		Food:   p.food.Value(),
		Joy:    p.joy.Value(),
		Energy: p.energy.Value(),
		Health: p.health.Value(),
	}
}

// FoodIsMax reports whether the pet is full. The session uses it to skip
// feeding (and the popup that goes with it).
func (p *Pet) FoodIsMax() bool {
	return p.food.IsMax()
}
