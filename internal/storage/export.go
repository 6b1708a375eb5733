package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRecord is one CSV row of the pet history.
type csvRecord struct {
	ID            string  `csv:"id"`
	Name          string  `csv:"name"`
	Species       string  `csv:"species"`
	Color         string  `csv:"color"`
	Stage         string  `csv:"stage"`
	Born          string  `csv:"born"`
	Died          string  `csv:"died"`
	Cause         string  `csv:"cause"`
	LifespanHours float64 `csv:"lifespan_hours"`
}

// WriteCSV writes entries as CSV with a header row. Living pets have an
// empty died column and their lifespan so far, measured at now.
func WriteCSV(w io.Writer, entries []PetEntry, now time.Time) error {
	records := make([]*csvRecord, 0, len(entries))
	for _, e := range entries {
		r := &csvRecord{
			ID:            e.ID,
			Name:          e.Name,
			Species:       e.Species,
			Color:         e.Color,
			Stage:         e.Stage,
			Born:          e.BornAt.UTC().Format(time.RFC3339),
			Cause:         e.Cause,
			LifespanHours: roundHours(e.Lifespan(now)),
		}
		if !e.Alive() {
			r.Died = e.DiedAt.UTC().Format(time.RFC3339)
		}
		records = append(records, r)
	}

	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("storage: writing csv: %w", err)
	}
	return nil
}

func roundHours(d time.Duration) float64 {
	return float64(d.Round(time.Minute)/time.Minute) / 60
}
