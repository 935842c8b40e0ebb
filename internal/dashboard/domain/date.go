package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// PublishZone fixed UTC+9 zone publish timestamps are converted to
var PublishZone = time.FixedZone("JST", 9*60*60)

const dateLayout = "2006-01-02"

// Date calendar date without time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate build a Date
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf date of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParsePublishedAt parse an RFC 3339 timestamp and truncate it to a date in PublishZone
func ParsePublishedAt(s string) (Date, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse publishedAt %q: %w", s, err)
	}
	return DateOf(t.In(PublishZone)), nil
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// String "YYYY-MM-DD", empty for the zero Date
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON encodes as "YYYY-MM-DD", the zero Date as null
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes "YYYY-MM-DD"; null and "" give the zero Date
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}
