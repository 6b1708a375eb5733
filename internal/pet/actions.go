package pet

import "time"

// Care action effects.
const (
	playJoy      = 30
	playDebt     = 10 * time.Minute
	medicineHeal = 40
)

// canAct reports whether care actions may touch the pet. Eggs and dead pets
// ignore them.
func (p *Pet) canAct() bool {
	return p.alive && p.stage != StageEgg
}

// Feed fills the food stat and charges a third of the food's points, in
// minutes, as health debt.
func (p *Pet) Feed(food Food) {
	if !p.canAct() {
		return
	}
	p.food.Add(food.Points())
	p.healthDebt += time.Duration(food.Points()/3) * time.Minute
}

// Play raises joy and charges ten minutes of health debt.
func (p *Pet) Play() {
	if !p.canAct() {
		return
	}
	p.joy.Add(playJoy)
	p.healthDebt += playDebt
}

// ToggleSleep puts the pet to sleep or wakes it up.
func (p *Pet) ToggleSleep(now time.Time) {
	if !p.canAct() {
		return
	}
	p.asleep = !p.asleep
	if p.asleep {
		p.asleepSince = Millis(now)
	} else {
		p.asleepSince = time.Time{}
	}
}

// TakeMedicine restores health.
func (p *Pet) TakeMedicine() {
	if !p.canAct() {
		return
	}
	p.health.Add(medicineHeal)
}
