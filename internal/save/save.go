// Package save persists the game state to a single JSON file so offline time
// can be replayed on the next launch.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-pet/internal/pet"
)

// DefaultPath is where the save file lives unless configured otherwise.
const DefaultPath = "./save-file.txt"

var (
	// ErrNotFound means there is no save file yet.
	ErrNotFound = errors.New("save: no save file")
	// ErrCorrupt means the file exists but does not hold a valid game state.
	ErrCorrupt = errors.New("save: corrupt save file")
	// ErrIO wraps any other filesystem failure.
	ErrIO = errors.New("save: i/o error")
)

// GameState is everything persisted between runs.
type GameState struct {
	Pet            *pet.Pet
	LastUpdateTime time.Time
}

type document struct {
	Pet            *pet.Pet `json:"pet"`
	LastUpdateTime int64    `json:"last_update_time"`
}

// Store reads and writes one save file.
type Store struct {
	path string
}

// NewStore creates a store for the file at path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Read loads the saved game state. It does not advance time; callers run
// UpdateState on the pet before using it.
func (s *Store) Read() (*GameState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, s.path, err)
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, s.path, err)
	}
	if doc.Pet == nil {
		return nil, fmt.Errorf("%w: %s: missing pet", ErrCorrupt, s.path)
	}

	return &GameState{
		Pet:            doc.Pet,
		LastUpdateTime: time.UnixMilli(doc.LastUpdateTime),
	}, nil
}

// Write brings the pet up to now and replaces the save file with the result.
// The file is truncated before writing and synced before it is closed.
func (s *Store) Write(gs *GameState, now time.Time) error {
	if gs == nil || gs.Pet == nil {
		return fmt.Errorf("%w: nothing to save", ErrIO)
	}

	gs.Pet.UpdateState(now)
	gs.LastUpdateTime = pet.Millis(now)

	data, err := json.Marshal(document{
		Pet:            gs.Pet,
		LastUpdateTime: gs.LastUpdateTime.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrIO, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create directory: %w", ErrIO, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrIO, s.path, err)
	}

	if err := f.Truncate(0); err != nil {
		f.Close()
		return fmt.Errorf("%w: truncate %s: %w", ErrIO, s.path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIO, s.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: sync %s: %w", ErrIO, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, s.path, err)
	}
	return nil
}
