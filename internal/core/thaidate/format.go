package thaidate

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout selects which part of an instant Format renders
type Layout string

const (
	// LayoutDate renders "วันจันทร์ที่ 1 มกราคม 2567"
	LayoutDate Layout = "date"
	// LayoutTime renders the spoken time of day, e.g. "บ่าย2:30 น."
	LayoutTime Layout = "time"
	// LayoutFull renders the date, a space, then the time of day
	LayoutFull Layout = "full"
)

// ParseLayout accepts date, time or full in any case
func ParseLayout(s string) (Layout, bool) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutDate, LayoutTime, LayoutFull:
		return l, true
	}
	return "", false
}

// FormatDate renders "วัน{weekday}ที่ {day} {month} {BE year}"
// panics when the date is not a valid civil date
func FormatDate(ci CivilInstant) string {
	month := MonthName(ci.Month)
	if !IsValidCivilDate(ci.Year, ci.Month, ci.Day) {
		panic(fmt.Sprintf("thaidate: %s is not a civil date", ci))
	}
	var b strings.Builder
	b.Grow(64)
	b.WriteString("วัน")
	b.WriteString(WeekdayName(ci.Weekday()))
	b.WriteString("ที่ ")
	b.WriteString(strconv.Itoa(ci.Day))
	b.WriteByte(' ')
	b.WriteString(month)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(ci.BuddhistYear()))
	return b.String()
}

// FormatTimeOfDay renders the time the way it is spoken
//
//	0:00  -> "เที่ยงคืน"      0:15  -> "เที่ยงคืน15 นาที"
//	12:00 -> "เที่ยง"         12:40 -> "เที่ยง40 นาที"
//	13:00 -> "บ่าย1 น."       13:05 -> "บ่าย1:5 น."
//	9:05  -> "9:05 น."
//
// The punctuation differs between bands and clients depend on it; keep it
func FormatTimeOfDay(hour, minute int) string {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		panic(fmt.Sprintf("thaidate: time %d:%d out of range", hour, minute))
	}
	switch {
	case hour == 0:
		return "เที่ยงคืน" + spokenMinutes(minute)
	case hour == 12:
		return "เที่ยง" + spokenMinutes(minute)
	case hour > 12:
		s := "บ่าย" + strconv.Itoa(hour-12)
		if minute > 0 {
			s += ":" + strconv.Itoa(minute)
		}
		return s + " น."
	default:
		return fmt.Sprintf("%d:%02d น.", hour, minute)
	}
}

func spokenMinutes(minute int) string {
	if minute == 0 {
		return ""
	}
	return strconv.Itoa(minute) + " นาที"
}

// FormatFull renders FormatDate and FormatTimeOfDay separated by a space
func FormatFull(ci CivilInstant) string {
	return FormatDate(ci) + " " + FormatTimeOfDay(ci.Hour, ci.Minute)
}

// Format renders ci in layout; an unknown layout gets the numeric th-TH
// locale form "d/m/BE H:MM:SS"
func Format(ci CivilInstant, layout Layout) string {
	switch layout {
	case LayoutDate:
		return FormatDate(ci)
	case LayoutTime:
		return FormatTimeOfDay(ci.Hour, ci.Minute)
	case LayoutFull:
		return FormatFull(ci)
	default:
		return fmt.Sprintf("%d/%d/%d %d:%02d:00", ci.Day, ci.Month, ci.BuddhistYear(), ci.Hour, ci.Minute)
	}
}
