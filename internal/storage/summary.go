package storage

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a pet history.
type Summary struct {
	Adopted int
	Died    int
	Alive   int

	// Lifespans of pets that have died.
	MeanLifespan   time.Duration
	StdDevLifespan time.Duration
	MedianLifespan time.Duration
	LongestLived   time.Duration

	Causes map[string]int
}

// Summarize computes lifespan statistics over entries.
func Summarize(entries []PetEntry) Summary {
	sum := Summary{
		Adopted: len(entries),
		Causes:  make(map[string]int),
	}

	var hours []float64
	for _, e := range entries {
		if e.Alive() {
			sum.Alive++
			continue
		}
		sum.Died++
		if e.Cause != "" {
			sum.Causes[e.Cause]++
		}
		hours = append(hours, e.Lifespan(e.DiedAt).Hours())
	}
	if len(hours) == 0 {
		return sum
	}

	sort.Float64s(hours)
	mean, std := stat.MeanStdDev(hours, nil)
	if len(hours) < 2 || math.IsNaN(std) {
		std = 0
	}
	sum.MeanLifespan = fromHours(mean)
	sum.StdDevLifespan = fromHours(std)
	sum.MedianLifespan = fromHours(stat.Quantile(0.5, stat.Empirical, hours, nil))
	sum.LongestLived = fromHours(hours[len(hours)-1])
	return sum
}

func fromHours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour)).Round(time.Second)
}
