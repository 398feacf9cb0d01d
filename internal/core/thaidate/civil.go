package thaidate

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCivil is wrapped by every constructor failure in this file
var ErrInvalidCivil = errors.New("thaidate: invalid civil instant")

// CivilInstant is a wall clock minute on a Gregorian date
// It carries no zone; the Clock that produced it decides which zone it is read in
type CivilInstant struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewCivilInstant checks every field and builds a CivilInstant
func NewCivilInstant(year, month, day, hour, minute int) (CivilInstant, error) {
	if !IsValidCivilDate(year, month, day) {
		return CivilInstant{}, fmt.Errorf("%w: date %04d-%02d-%02d", ErrInvalidCivil, year, month, day)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return CivilInstant{}, fmt.Errorf("%w: time %02d:%02d", ErrInvalidCivil, hour, minute)
	}
	return CivilInstant{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}, nil
}

// MustCivilInstant is NewCivilInstant for literals known to be valid, it panics otherwise
func MustCivilInstant(year, month, day, hour, minute int) CivilInstant {
	ci, err := NewCivilInstant(year, month, day, hour, minute)
	if err != nil {
		panic(err)
	}
	return ci
}

// FromTime reads t on the wall clock of loc, nil loc keeps t's own location
// seconds and below are truncated
func FromTime(t time.Time, loc *time.Location) CivilInstant {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return CivilInstant{Year: y, Month: int(m), Day: d, Hour: t.Hour(), Minute: t.Minute()}
}

// Time places the instant on the wall clock of loc, nil loc means UTC
func (c CivilInstant) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, 0, 0, loc)
}

// BuddhistYear returns the display year
func (c CivilInstant) BuddhistYear() int { return ToBuddhistYear(c.Year) }

// Weekday returns the Gregorian day of week of the date part
func (c CivilInstant) Weekday() time.Weekday { return Weekday(c.Year, c.Month, c.Day) }

// DateOnly drops the time of day
func (c CivilInstant) DateOnly() CivilInstant {
	return CivilInstant{Year: c.Year, Month: c.Month, Day: c.Day}
}

// CompareDate orders by date only and returns -1, 0 or +1
func (c CivilInstant) CompareDate(o CivilInstant) int {
	switch {
	case c.Year != o.Year:
		return sign(c.Year - o.Year)
	case c.Month != o.Month:
		return sign(c.Month - o.Month)
	default:
		return sign(c.Day - o.Day)
	}
}

// Compare orders by date then time of day and returns -1, 0 or +1
func (c CivilInstant) Compare(o CivilInstant) int {
	if d := c.CompareDate(o); d != 0 {
		return d
	}
	if c.Hour != o.Hour {
		return sign(c.Hour - o.Hour)
	}
	return sign(c.Minute - o.Minute)
}

// BeforeDate reports whether c falls on an earlier day than o
func (c CivilInstant) BeforeDate(o CivilInstant) bool { return c.CompareDate(o) < 0 }

// Sub returns the wall clock distance c-o; both are read in the same zone
func (c CivilInstant) Sub(o CivilInstant) time.Duration {
	return c.Time(time.UTC).Sub(o.Time(time.UTC))
}

// String renders an ISO-like "2006-01-02 15:04" form for logs
func (c CivilInstant) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", c.Year, c.Month, c.Day, c.Hour, c.Minute)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
