// Package thaidate renders Gregorian civil instants the way Thai speakers read
// them (Buddhist Era years, Thai weekday and month names, spoken time of day)
// and validates masked dd/mm/yyyy and hh:mm text while it is being typed
//
// The proleptic Gregorian calendar is the only calendar used for arithmetic.
// The Buddhist Era is a display transform: BE = CE + 543
package thaidate

import "time"

// BuddhistEraOffset is how far the Buddhist Era year runs ahead of the Gregorian year
const BuddhistEraOffset = 543

// daysPerMonth is indexed by month-1 for a common year
var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// sakamoto holds the month offsets of Sakamoto's day of week congruence
var sakamoto = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// IsLeapYear applies the Gregorian rule: divisible by 4, not by 100 unless also by 400
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year, or 0 when month is outside 1..12
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// IsValidCivilDate reports whether (year, month, day) names a real Gregorian date
func IsValidCivilDate(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// ToBuddhistYear converts a Gregorian year to its Buddhist Era year
func ToBuddhistYear(gregorianYear int) int { return gregorianYear + BuddhistEraOffset }

// FromBuddhistYear converts a Buddhist Era year to its Gregorian year
func FromBuddhistYear(buddhistYear int) int { return buddhistYear - BuddhistEraOffset }

// Weekday returns the day of week of a valid civil date
// month must be in 1..12; callers check IsValidCivilDate first
func Weekday(year, month, day int) time.Weekday {
	y := year
	if month < 3 {
		y--
	}
	w := (y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) + sakamoto[month-1] + day) % 7
	if w < 0 {
		w += 7
	}
	return time.Weekday(w)
}

// floorDiv rounds toward negative infinity so years before 1 CE stay on the same cycle
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
