package pet

import "time"

// Decay quanta. Each cursor moves forward by exactly one quantum per effect.
const (
	FoodQuantum   = 14 * time.Minute
	EnergyQuantum = 12 * time.Minute
	JoyQuantum    = 16 * time.Minute
	HealthQuantum = 1 * time.Minute
)

// Per-quantum effects.
const (
	foodDecay    = 1
	joyDecay     = 1
	energyDecay  = 1
	energyRegen  = 3
	healthDecay  = 1
	weakSumLimit = 15
)

// MaxSleep is how long a pet sleeps before waking up on its own.
const MaxSleep = 12 * time.Hour

// UpdateState advances the pet to now. It is the only way time moves: growth
// first, then the food, energy, joy and health cursors in that order, then the
// alive predicate. Calling it twice with the same now is the same as calling
// it once.
func (p *Pet) UpdateState(now time.Time) {
	p.grow(now)
	if p.stage == StageEgg {
		return
	}

	for now.Sub(p.lastFoodTick) >= FoodQuantum {
		p.food.Subtract(foodDecay)
		p.lastFoodTick = p.lastFoodTick.Add(FoodQuantum)
	}

	for now.Sub(p.lastEnergyTick) >= EnergyQuantum {
		if p.asleep {
			p.energy.Add(energyRegen)
		} else {
			p.energy.Subtract(energyDecay)
		}
		p.lastEnergyTick = p.lastEnergyTick.Add(EnergyQuantum)
		p.autoWake(now)
	}

	for now.Sub(p.lastJoyTick) >= JoyQuantum {
		p.joy.Subtract(joyDecay)
		p.lastJoyTick = p.lastJoyTick.Add(JoyQuantum)
	}

	for now.Sub(p.lastHealthTick) >= HealthQuantum {
		if p.healthDebt >= HealthQuantum {
			p.health.Subtract(healthDecay)
			p.healthDebt -= HealthQuantum
		}
		p.lastHealthTick = p.lastHealthTick.Add(HealthQuantum)
	}

	p.checkAlive()
}

// grow applies at most one stage transition.
func (p *Pet) grow(now time.Time) {
	if p.stage == StageAdult {
		return
	}
	next := p.stage.Next()
	if p.Age(now) >= next.MinAge() {
		p.stage = next
	}
}

func (p *Pet) autoWake(now time.Time) {
	if p.asleep && !p.asleepSince.IsZero() && now.Sub(p.asleepSince) > MaxSleep {
		p.asleep = false
		p.asleepSince = time.Time{}
	}
}

func (p *Pet) checkAlive() {
	if !p.alive {
		return
	}

	cause := CauseNone
	if p.food.Value()+p.joy.Value()+p.health.Value() < weakSumLimit {
		cause = CauseWeakness
	}

	if cause == CauseNone {
		zeros := 0
		for _, s := range []Stat{p.food, p.joy, p.energy, p.health} {
			if s.Value() == 0 {
				zeros++
			}
		}
		if zeros >= 2 {
			cause = CauseNeglect
		}
	}

	if cause == CauseNone && p.health.Value() == 0 {
		cause = CauseSickness
	}

	if cause != CauseNone {
		p.alive = false
		p.causeOfDeath = cause
	}
}
