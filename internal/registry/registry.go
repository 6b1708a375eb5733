// Package registry provides a global registry of pet species.
// Species register themselves in init() functions, so adoption can pick one
// at random without a hardcoded list.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/sprite"
)

// Species is a kind of creature a pet grows into.
type Species struct {
	ID    string        // Stored in save files, e.g. "duck"
	Title string        // Human-readable name, e.g. "Duck"
	Adult sprite.Sprite // Shape once the pet reaches adulthood
}

var (
	species = make(map[string]Species)
	mu      sync.RWMutex
)

// Register adds a species to the registry.
// Panics if a species with the same ID is already registered.
func Register(s Species) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := species[s.ID]; exists {
		panic(fmt.Sprintf("registry: species %q already registered", s.ID))
	}
	species[s.ID] = s
}

// List returns all registered species, sorted by ID.
func List() []Species {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Species, 0, len(species))
	for _, s := range species {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the species with the given ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Species, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := species[id]
	if !ok {
		return Species{}, fmt.Errorf("registry: unknown species %q", id)
	}
	return s, nil
}

// Exists checks if a species with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := species[id]
	return ok
}

// Random picks a registered species uniformly.
func Random(rng *rand.Rand) Species {
	all := List()
	if len(all) == 0 {
		panic("registry: no species registered")
	}
	return all[rng.Intn(len(all))]
}

// SpriteFor returns what a pet of the given species looks like at stage.
// Unknown species fall back to the default species so an old save still
// renders.
func SpriteFor(stage pet.GrowthStage, id string) sprite.Sprite {
	s, err := Lookup(id)
	if err != nil {
		s, _ = Lookup(DefaultSpecies)
	}
	return sprite.ForStage(stage, s.Adult)
}
