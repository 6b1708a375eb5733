package session

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
)

// Popup is the animation the renderer shows after a care action. While one is
// on screen further care actions are dropped.
type Popup int

const (
	PopupNone Popup = iota
	PopupFood
	PopupJoy
	PopupHealth
)

// String returns the popup name.
func (p Popup) String() string {
	switch p {
	case PopupFood:
		return "food"
	case PopupJoy:
		return "joy"
	case PopupHealth:
		return "health"
	default:
		return "none"
	}
}

// Dispatch applies a care action to p. Eggs and dead pets ignore everything,
// sleeping pets only accept Sleep (which wakes them) and a full pet will not
// eat. When food is nil a random one is served. It reports whether the pet
// was changed and which popup to show.
func Dispatch(p *pet.Pet, action core.CareAction, food *pet.Food, now time.Time, rng *rand.Rand) (Popup, bool) {
	if p == nil || !p.Alive() || p.Stage() == pet.StageEgg {
		return PopupNone, false
	}
	if p.Asleep() && action != core.CareSleep {
		return PopupNone, false
	}

	switch action {
	case core.CareEat:
		if p.FoodIsMax() {
			return PopupNone, false
		}
		f := pet.RandomFood(rng)
		if food != nil {
			f = *food
		}
		p.Feed(f)
		return PopupFood, true
	case core.CarePlay:
		p.Play()
		return PopupJoy, true
	case core.CareSleep:
		p.ToggleSleep(now)
		return PopupNone, true
	case core.CareMedicine:
		p.TakeMedicine()
		return PopupHealth, true
	}
	return PopupNone, false
}
