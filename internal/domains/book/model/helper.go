package model

import (
	"time"

	"library-service/internal/shared"
)

// ArchiveCutoff computes the archival boundary: books published on or
// before the cutoff are archived. The window is years*365 days, leap
// years deliberately ignored.
func ArchiveCutoff(now time.Time, years int) shared.Date {
	today := shared.DateFrom(now)
	return shared.DateFrom(today.AddDate(0, 0, -years*365))
}
