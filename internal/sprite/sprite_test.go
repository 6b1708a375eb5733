package sprite

import (
	"testing"

	"github.com/vovakirdan/tui-pet/internal/pet"
)

func TestExtents(t *testing.T) {
	tests := []struct {
		sprite Sprite
		want   Extents
	}{
		{Egg, Extents{W: 9, H: 11}},
		{Baby, Extents{W: 15, H: 15}},
		{Kid, Extents{W: 17, H: 17}},
		{Duck, Extents{W: 20, H: 18}},
		{Frog, Extents{W: 19, H: 13}},
		{Cat, Extents{W: 15, H: 15}},
	}

	for _, tc := range tests {
		t.Run(tc.sprite.ID(), func(t *testing.T) {
			if got := tc.sprite.Extents(); got != tc.want {
				t.Errorf("Extents() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestFilledUsesCanvasOrientation(t *testing.T) {
	s := New("corner",
		"#..",
		"...",
		"..#",
	)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 2, true}, // top-left row
		{2, 0, true}, // bottom-right row
		{0, 0, false},
		{2, 2, false},
		{-1, 0, false},
		{3, 0, false},
		{0, 3, false},
	}

	for _, tc := range tests {
		if got := s.Filled(tc.x, tc.y); got != tc.want {
			t.Errorf("Filled(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
	if n := len(s.Pixels()); n != 2 {
		t.Errorf("len(Pixels()) = %d, expected 2", n)
	}
}

func TestShortRowsArePadded(t *testing.T) {
	s := New("ragged", "###", "#")
	if s.Width() != 3 {
		t.Errorf("Width() = %d, expected 3", s.Width())
	}
	if s.Filled(2, 0) {
		t.Error("padding must be transparent")
	}
}

func TestForStage(t *testing.T) {
	tests := []struct {
		stage pet.GrowthStage
		want  string
	}{
		{pet.StageEgg, "egg"},
		{pet.StageBaby, "baby"},
		{pet.StageKid, "kid"},
		{pet.StageAdult, "frog"},
	}

	for _, tc := range tests {
		if got := ForStage(tc.stage, Frog).ID(); got != tc.want {
			t.Errorf("ForStage(%s) = %q, expected %q", tc.stage, got, tc.want)
		}
	}
}
