package thaidate

import "time"

// Bangkok is Indochina Time, UTC+7 with no daylight saving
var Bangkok = time.FixedZone("Asia/Bangkok", 7*60*60)

// Clock supplies the current civil moment
type Clock interface {
	Now() CivilInstant
}

// ClockFunc adapts a plain function to Clock
type ClockFunc func() CivilInstant

// Now calls f
func (f ClockFunc) Now() CivilInstant { return f() }

// FixedClock always reports the same moment; tests pin "today" with it
type FixedClock CivilInstant

// Now returns the pinned moment
func (c FixedClock) Now() CivilInstant { return CivilInstant(c) }

// wallNow is swapped in tests
var wallNow = time.Now

// SystemClock reads the wall clock in Loc (Bangkok when nil)
type SystemClock struct {
	Loc *time.Location
}

// Now converts the wall clock into Loc
func (c SystemClock) Now() CivilInstant {
	loc := c.Loc
	if loc == nil {
		loc = Bangkok
	}
	return FromTime(wallNow(), loc)
}
