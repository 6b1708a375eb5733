package registry

import "github.com/vovakirdan/tui-pet/internal/sprite"

// DefaultSpecies is used when a save names a species this build does not know.
const DefaultSpecies = "duck"

func init() {
	Register(Species{ID: "duck", Title: "Duck", Adult: sprite.Duck})
	Register(Species{ID: "frog", Title: "Frog", Adult: sprite.Frog})
	Register(Species{ID: "cat", Title: "Cat", Adult: sprite.Cat})
}
