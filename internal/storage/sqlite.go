// Package storage provides SQLite-based persistence for the pet history: every
// pet ever adopted, and when and why it died.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/session"
)

// Store manages the SQLite database connection for the pet history.
type Store struct {
	db *sql.DB
}

// PetEntry is one pet in the history.
type PetEntry struct {
	ID      string
	Name    string
	Species string
	Color   string
	Stage   string // Last stage recorded
	BornAt  time.Time
	DiedAt  time.Time // Zero while alive
	Cause   string
}

// Alive reports whether the pet has no recorded death.
func (e PetEntry) Alive() bool {
	return e.DiedAt.IsZero()
}

// Lifespan is how long the pet lived, or has lived so far at now.
func (e PetEntry) Lifespan(now time.Time) time.Duration {
	end := e.DiedAt
	if end.IsZero() {
		end = now
	}
	if end.Before(e.BornAt) {
		return 0
	}
	return end.Sub(e.BornAt)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Timestamps are Unix milliseconds, like the save file.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS pets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			species TEXT NOT NULL,
			color TEXT NOT NULL,
			stage TEXT NOT NULL,
			born_at INTEGER NOT NULL,
			died_at INTEGER,
			cause TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_pets_born_at ON pets(born_at DESC);
		CREATE INDEX IF NOT EXISTS idx_pets_species ON pets(species);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordAdoption implements session.Recorder. Recording the same pet twice
// keeps the first row.
func (s *Store) RecordAdoption(rec session.LifeRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO pets (id, name, species, color, stage, born_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		rec.PetID, rec.Name, rec.Species, rec.Color.String(), rec.Stage.String(), rec.Born.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record adoption: %w", err)
	}
	return nil
}

// RecordDeath implements session.Recorder. A pet that was never recorded as
// adopted (e.g. one from an older save) is inserted; a death is only recorded
// once.
func (s *Store) RecordDeath(rec session.LifeRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO pets (id, name, species, color, stage, born_at, died_at, cause)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   stage = excluded.stage,
		   died_at = excluded.died_at,
		   cause = excluded.cause
		 WHERE pets.died_at IS NULL`,
		rec.PetID, rec.Name, rec.Species, rec.Color.String(), rec.Stage.String(),
		rec.Born.UnixMilli(), rec.Died.UnixMilli(), string(rec.Cause),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record death: %w", err)
	}
	return nil
}

// Ensure Store implements Recorder
var _ session.Recorder = (*Store)(nil)

const selectPets = `SELECT id, name, species, color, stage, born_at, died_at, cause FROM pets`

// History retrieves the most recently adopted pets, newest first.
func (s *Store) History(limit int) ([]PetEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(selectPets+` ORDER BY born_at DESC LIMIT ?`, limit)
}

// AllPets retrieves every pet (no limit), newest first.
func (s *Store) AllPets() ([]PetEntry, error) {
	return s.query(selectPets + ` ORDER BY born_at DESC`)
}

// Graveyard retrieves pets that have died, most recent death first.
func (s *Store) Graveyard(limit int) ([]PetEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(selectPets+` WHERE died_at IS NOT NULL ORDER BY died_at DESC LIMIT ?`, limit)
}

// PetByID retrieves a pet by its id. Returns nil if it is not recorded.
func (s *Store) PetByID(id string) (*PetEntry, error) {
	entries, err := s.query(selectPets+` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// ClearHistory deletes every recorded pet.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec("DELETE FROM pets")
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

func (s *Store) query(q string, args ...any) ([]PetEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pets: %w", err)
	}
	defer rows.Close()

	var entries []PetEntry
	for rows.Next() {
		var e PetEntry
		var born int64
		var died sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Name, &e.Species, &e.Color, &e.Stage, &born, &died, &e.Cause); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.BornAt = time.UnixMilli(born)
		if died.Valid {
			e.DiedAt = time.UnixMilli(died.Int64)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SpeciesStats contains aggregated statistics for one species.
type SpeciesStats struct {
	Species  string
	Adopted  int
	Died     int
	LastBorn time.Time
}

// GetAllSpeciesStats retrieves statistics for every species that has been adopted.
func (s *Store) GetAllSpeciesStats() (map[string]*SpeciesStats, error) {
	rows, err := s.db.Query(
		`SELECT species, COUNT(*), COUNT(died_at), MAX(born_at)
		 FROM pets
		 GROUP BY species`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get species stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SpeciesStats)
	for rows.Next() {
		var st SpeciesStats
		var lastBorn int64
		if err := rows.Scan(&st.Species, &st.Adopted, &st.Died, &lastBorn); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastBorn = time.UnixMilli(lastBorn)
		stats[st.Species] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
