package core

import (
	"fmt"
	"math/rand"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 16-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The first block doubles as the pet palette.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorLightMagenta
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite
	ColorBlack
	ColorYellow
	ColorGray
)

// PetPalette lists the colors a newly adopted pet may be drawn in.
var PetPalette = []Color{
	ColorCyan,
	ColorLightMagenta,
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorWhite,
	ColorBlack,
}

var colorNames = map[Color]string{
	ColorDefault:      "default",
	ColorCyan:         "cyan",
	ColorLightMagenta: "light_magenta",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorBlue:         "blue",
	ColorWhite:        "white",
	ColorBlack:        "black",
	ColorYellow:       "yellow",
	ColorGray:         "gray",
}

// RandomPetColor picks a palette entry uniformly.
func RandomPetColor(rng *rand.Rand) Color {
	return PetPalette[rng.Intn(len(PetPalette))]
}

// String returns the stable name used in save files.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor is the inverse of String.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range colorNames {
		if name == s {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
