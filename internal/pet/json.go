package pet

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pet/internal/core"
)

// record is the on-disk shape of a Pet. Timestamps are integer milliseconds
// since the Unix epoch.
type record struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Species        string      `json:"species"`
	Color          core.Color  `json:"color"`
	Food           Stat        `json:"food"`
	Joy            Stat        `json:"joy"`
	Energy         Stat        `json:"energy"`
	Health         Stat        `json:"health"`
	GrowthStage    GrowthStage `json:"growth_stage"`
	Asleep         bool        `json:"asleep"`
	AsleepSince    *int64      `json:"asleep_since"`
	Alive          bool        `json:"alive"`
	CauseOfDeath   Cause       `json:"cause_of_death,omitempty"`
	TimeCreated    int64       `json:"time_created"`
	LastFoodTick   int64       `json:"last_food_tick"`
	LastJoyTick    int64       `json:"last_joy_tick"`
	LastEnergyTick int64       `json:"last_energy_tick"`
	LastHealthTick int64       `json:"last_health_tick"`
	HealthDebitMS  int64       `json:"health_debit_ms"`
}

// MarshalJSON implements json.Marshaler.
func (p *Pet) MarshalJSON() ([]byte, error) {
	r := record{
		ID:             p.id,
		Name:           p.name,
		Species:        p.species,
		Color:          p.color,
		Food:           p.food,
		Joy:            p.joy,
		Energy:         p.energy,
		Health:         p.health,
		GrowthStage:    p.stage,
		Asleep:         p.asleep,
		Alive:          p.alive,
		CauseOfDeath:   p.causeOfDeath,
		TimeCreated:    p.created.UnixMilli(),
		LastFoodTick:   p.lastFoodTick.UnixMilli(),
		LastJoyTick:    p.lastJoyTick.UnixMilli(),
		LastEnergyTick: p.lastEnergyTick.UnixMilli(),
		LastHealthTick: p.lastHealthTick.UnixMilli(),
		HealthDebitMS:  p.healthDebt.Milliseconds(),
	}
	if p.asleep && !p.asleepSince.IsZero() {
		ms := p.asleepSince.UnixMilli()
		r.AsleepSince = &ms
	}
	return json.Marshal(r)
}

// UnmarshalJSON implements json.Unmarshaler. Stats outside [0, 100], unknown
// stages or colors, a missing creation time, negative health debt and an
// asleep flag that disagrees with asleep_since are all rejected.
func (p *Pet) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if r.TimeCreated <= 0 {
		return errors.New("pet: missing time_created")
	}
	if r.HealthDebitMS < 0 {
		return fmt.Errorf("pet: negative health_debit_ms %d", r.HealthDebitMS)
	}
	if r.Asleep != (r.AsleepSince != nil) {
		return fmt.Errorf("pet: asleep=%v does not match asleep_since", r.Asleep)
	}

	*p = Pet{
		id:             r.ID,
		name:           r.Name,
		species:        r.Species,
		color:          r.Color,
		food:           r.Food,
		joy:            r.Joy,
		energy:         r.Energy,
		health:         r.Health,
		stage:          r.GrowthStage,
		asleep:         r.Asleep,
		alive:          r.Alive,
		causeOfDeath:   r.CauseOfDeath,
		created:        time.UnixMilli(r.TimeCreated),
		lastFoodTick:   time.UnixMilli(r.LastFoodTick),
		lastJoyTick:    time.UnixMilli(r.LastJoyTick),
		lastEnergyTick: time.UnixMilli(r.LastEnergyTick),
		lastHealthTick: time.UnixMilli(r.LastHealthTick),
		healthDebt:     time.Duration(r.HealthDebitMS) * time.Millisecond,
	}
	if r.Asleep {
		p.asleepSince = time.UnixMilli(*r.AsleepSince)
	}
	return nil
}
