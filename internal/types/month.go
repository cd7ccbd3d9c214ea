// Package types implements special types for Centsible.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// ParseDateToMonth parses a string in RFC3339 full-date format and returns the Month value it represents.
func ParseDateToMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepts RFC3339 timestamps, "2006-01-02" dates and "2006-01"
// months; everything except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02T15:04:05Z07:00"
	if match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value); err != nil {
		return err
	} else if match {
		pattern = "2006-01-02"
	} else if match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}$", value); err != nil {
		return err
	} else if match {
		pattern = "2006-01"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// Year returns the year the month is in.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// FirstDay returns the first day of the month at UTC midnight.
func (m Month) FirstDay() time.Time {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns the last day of the month at UTC midnight.
func (m Month) LastDay() time.Time {
	return m.AddDate(0, 1).FirstDay().AddDate(0, 0, -1)
}

// ClampDay returns day d constrained to the valid day numbers of the
// month, so "February 30" resolves to February 28 (or 29).
func (m Month) ClampDay(d int) time.Time {
	last := m.LastDay().Day()
	if d < 1 {
		d = 1
	}
	if d > last {
		d = last
	}

	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
