package shared

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Task type and queue names shared between the worker and the scheduler
// (kept here to avoid import cycles with the domain packages).
const (
	TypeArchiveOutdatedBooks = "book:archive_outdated"

	QueueDefault = "library_service"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals as
// "YYYY-MM-DD" on the wire and maps to the Postgres DATE type.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFrom truncates t to midnight UTC.
func DateFrom(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateFrom(v)
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into shared.Date", src)
	}
}

// DatePtr converts a nullable time.Time scanned from the database.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := DateFrom(*t)
	return &d
}

// TimePtr converts back for query parameters; nil stays nil.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
