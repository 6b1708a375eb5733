package core

import (
	"math/rand"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Left() != 5 || r.Top() != 10 {
		t.Errorf("Left/Top = (%d, %d), expected (5, 10)", r.Left(), r.Top())
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", c.X, c.Y)
	}
}

func TestDefaultPlayground(t *testing.T) {
	p := DefaultPlayground()
	if p != NewRect(0, 0, 150, 100) {
		t.Errorf("DefaultPlayground() = %+v, expected (0, 0, 150, 100)", p)
	}
}

func TestNewLocationClampsNegative(t *testing.T) {
	tests := []struct {
		x, y     int
		expected Location
	}{
		{3, 4, Location{3, 4}},
		{-1, 4, Location{0, 4}},
		{3, -9, Location{3, 0}},
		{-5, -5, Location{0, 0}},
	}

	for _, tc := range tests {
		if got := NewLocation(tc.x, tc.y); got != tc.expected {
			t.Errorf("NewLocation(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.expected)
		}
	}

	if got := NewLocation(5, 5).Translate(-7, -7); got != (Location{0, 0}) {
		t.Errorf("Translate below zero = %+v, expected origin", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range PetPalette {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", c.String(), parsed, c)
		}
	}

	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestRandomPetColorStaysInPalette(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Color]bool)
	for i := 0; i < 500; i++ {
		seen[RandomPetColor(rng)] = true
	}
	for c := range seen {
		found := false
		for _, p := range PetPalette {
			if p == c {
				found = true
			}
		}
		if !found {
			t.Errorf("RandomPetColor returned %v outside the palette", c)
		}
	}
	if len(seen) != len(PetPalette) {
		t.Errorf("expected all %d palette colors over 500 draws, saw %d", len(PetPalette), len(seen))
	}
}
