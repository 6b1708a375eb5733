package save

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save-file.txt"))

	p := pet.New("Waldo", "duck", core.ColorLightMagenta, t0)
	now := t0.Add(6*time.Hour + 123*time.Millisecond)
	gs := &GameState{Pet: p}

	if err := store.Write(gs, now); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if p.Stage() != pet.StageBaby {
		t.Errorf("Write should advance the pet, stage = %s", p.Stage())
	}
	if !gs.LastUpdateTime.Equal(pet.Millis(now)) {
		t.Errorf("LastUpdateTime = %v, expected %v", gs.LastUpdateTime, now)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if diff := cmp.Diff(gs.Pet, got.Pet, cmp.AllowUnexported(pet.Pet{}, pet.Stat{})); diff != "" {
		t.Errorf("pet mismatch (-want +got):\n%s", diff)
	}
	if !got.LastUpdateTime.Equal(gs.LastUpdateTime) {
		t.Errorf("LastUpdateTime = %v, expected %v", got.LastUpdateTime, gs.LastUpdateTime)
	}
}

func TestSavedStateMatchesUpdatedPet(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save-file.txt"))

	p := pet.New("Waldo", "duck", core.ColorGreen, t0)
	p.UpdateState(t0.Add(5 * time.Minute))
	p.UpdateState(t0.Add(5 * time.Hour))
	p.Feed(pet.FoodSoup)
	p.ToggleSleep(t0.Add(5 * time.Hour))

	now := t0.Add(6 * time.Hour)
	if err := store.Write(&GameState{Pet: p}, now); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := store.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.Pet.Stats() != p.Stats() {
		t.Errorf("Stats() = %+v, expected %+v", got.Pet.Stats(), p.Stats())
	}
	if got.Pet.HealthDebt() != p.HealthDebt() {
		t.Errorf("HealthDebt() = %v, expected %v", got.Pet.HealthDebt(), p.HealthDebt())
	}
	since, asleep := got.Pet.AsleepSince()
	if !asleep || !since.Equal(pet.Millis(t0.Add(5*time.Hour))) {
		t.Errorf("AsleepSince() = %v, %v", since, asleep)
	}
}

func TestWriteTruncatesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save-file.txt")
	padding := make([]byte, 64*1024)
	for i := range padding {
		padding[i] = ' '
	}
	if err := os.WriteFile(path, append([]byte(`{"garbage":true}`), padding...), 0o644); err != nil {
		t.Fatalf("seeding file failed: %v", err)
	}

	store := NewStore(path)
	if err := store.Write(&GameState{Pet: pet.New("Waldo", "duck", core.ColorRed, t0)}, t0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() >= int64(len(padding)) {
		t.Errorf("file size = %d, old content was not truncated", info.Size())
	}
	if _, err := store.Read(); err != nil {
		t.Errorf("Read after overwrite failed: %v", err)
	}
}

func TestWriteCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "save.json")
	store := NewStore(path)
	if err := store.Write(&GameState{Pet: pet.New("Waldo", "duck", core.ColorRed, t0)}, t0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("save file not created: %v", err)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    error
	}{
		{"missing file", nil, ErrNotFound},
		{"not json", strPtr("not json at all"), ErrCorrupt},
		{"empty file", strPtr(""), ErrCorrupt},
		{"no pet", strPtr(`{"last_update_time": 1}`), ErrCorrupt},
		{"stat out of range", strPtr(`{"pet": {"food": 500, "time_created": 1}, "last_update_time": 1}`), ErrCorrupt},
		{"asleep without asleep_since", strPtr(`{"pet": {"asleep": true, "asleep_since": null, "time_created": 1}, "last_update_time": 1}`), ErrCorrupt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "save-file.txt")
			if tc.content != nil {
				if err := os.WriteFile(path, []byte(*tc.content), 0o644); err != nil {
					t.Fatalf("seeding file failed: %v", err)
				}
			}

			_, err := NewStore(path).Read()
			if !errors.Is(err, tc.want) {
				t.Errorf("Read() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestWriteWithoutPet(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save-file.txt"))
	if err := store.Write(&GameState{}, t0); !errors.Is(err, ErrIO) {
		t.Errorf("Write() error = %v, expected ErrIO", err)
	}
}

func TestDefaultPath(t *testing.T) {
	if got := NewStore("").Path(); got != DefaultPath {
		t.Errorf("Path() = %q, expected %q", got, DefaultPath)
	}
}

func strPtr(s string) *string { return &s }
