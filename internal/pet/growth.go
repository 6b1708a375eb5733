package pet

import (
	"fmt"
	"strings"
	"time"
)

// GrowthStage is a maturation level. Stages are ordered by age.
type GrowthStage int

const (
	StageEgg GrowthStage = iota
	StageBaby
	StageKid
	StageAdult
)

// Minimum age at which a pet enters each stage.
const (
	BabyAge  = 5 * time.Minute
	KidAge   = 5 * time.Hour
	AdultAge = 24 * time.Hour
)

// Next returns the following stage. Adult is terminal.
func (g GrowthStage) Next() GrowthStage {
	if g >= StageAdult {
		return StageAdult
	}
	return g + 1
}

// MinAge is the age threshold for entering the stage.
func (g GrowthStage) MinAge() time.Duration {
	switch g {
	case StageBaby:
		return BabyAge
	case StageKid:
		return KidAge
	case StageAdult:
		return AdultAge
	default:
		return 0
	}
}

// String returns the lowercase stage name used in save files.
func (g GrowthStage) String() string {
	switch g {
	case StageEgg:
		return "egg"
	case StageBaby:
		return "baby"
	case StageKid:
		return "kid"
	case StageAdult:
		return "adult"
	default:
		return "unknown"
	}
}

// ParseGrowthStage is the inverse of String.
func ParseGrowthStage(s string) (GrowthStage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "egg":
		return StageEgg, nil
	case "baby":
		return StageBaby, nil
	case "kid":
		return StageKid, nil
	case "adult":
		return StageAdult, nil
	}
	return StageEgg, fmt.Errorf("pet: unknown growth stage %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (g GrowthStage) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GrowthStage) UnmarshalText(text []byte) error {
	parsed, err := ParseGrowthStage(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
