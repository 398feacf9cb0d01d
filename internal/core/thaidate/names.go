package thaidate

import (
	"fmt"
	"time"
)

// weekdayNames is indexed by time.Weekday, Sunday first
var weekdayNames = [7]string{
	"อาทิตย์", "จันทร์", "อังคาร", "พุธ", "พฤหัสบดี", "ศุกร์", "เสาร์",
}

// monthNames is indexed by month-1
var monthNames = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// WeekdayName returns the Thai weekday name and panics on an out of range weekday
func WeekdayName(w time.Weekday) string {
	if w < time.Sunday || w > time.Saturday {
		panic(fmt.Sprintf("thaidate: weekday %d out of range", int(w)))
	}
	return weekdayNames[w]
}

// MonthName returns the Thai month name for month 1..12 and panics otherwise
func MonthName(month int) string {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("thaidate: month %d out of range", month))
	}
	return monthNames[month-1]
}
