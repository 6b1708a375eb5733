package pet

import (
	"fmt"
	"math/rand"
	"strings"
)

// Food is something a pet can be fed.
type Food int

const (
	FoodSoup Food = iota
	FoodFries
	FoodBurger
)

// Foods lists every food in menu order.
var Foods = []Food{FoodSoup, FoodFries, FoodBurger}

// Points is how much a serving fills the food stat.
func (f Food) Points() int {
	switch f {
	case FoodSoup:
		return 20
	case FoodFries:
		return 30
	case FoodBurger:
		return 40
	default:
		return 0
	}
}

// String returns the food's name.
func (f Food) String() string {
	switch f {
	case FoodSoup:
		return "soup"
	case FoodFries:
		return "fries"
	case FoodBurger:
		return "burger"
	default:
		return "unknown"
	}
}

// ParseFood is the inverse of String.
func ParseFood(s string) (Food, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range Foods {
		if f.String() == s {
			return f, nil
		}
	}
	return FoodSoup, fmt.Errorf("pet: unknown food %q", s)
}

// RandomFood picks one of the foods uniformly.
func RandomFood(rng *rand.Rand) Food {
	return Foods[rng.Intn(len(Foods))]
}
