package pet

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StatMax is the upper bound of every stat.
const StatMax = 100

// ErrOutOfRange is returned when a stat would be built or set outside [0, 100].
var ErrOutOfRange = errors.New("pet: stat value out of range")

// Stat is an integer that always stays within [0, 100]. Addition and
// subtraction saturate instead of failing; only construction and Set can
// report ErrOutOfRange.
type Stat struct {
	v int
}

// NewStat builds a stat with the given initial value.
func NewStat(v int) (Stat, error) {
	if v < 0 || v > StatMax {
		return Stat{}, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return Stat{v: v}, nil
}

// mustStat is for package constants known to be in range.
func mustStat(v int) Stat {
	s, err := NewStat(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the current value.
func (s Stat) Value() int {
	return s.v
}

// Set replaces the value.
func (s *Stat) Set(v int) error {
	if v < 0 || v > StatMax {
		return fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	s.v = v
	return nil
}

// Add raises the value, never exceeding 100.
func (s *Stat) Add(n int) {
	s.v += n
	if s.v > StatMax {
		s.v = StatMax
	}
}

// Subtract lowers the value, never going below 0.
func (s *Stat) Subtract(n int) {
	s.v -= n
	if s.v < 0 {
		s.v = 0
	}
}

// IsMax reports whether the stat is at 100.
func (s Stat) IsMax() bool {
	return s.v == StatMax
}

// MarshalJSON encodes the stat as a bare integer.
func (s Stat) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v)
}

// UnmarshalJSON rejects values outside [0, 100].
func (s *Stat) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := NewStat(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
