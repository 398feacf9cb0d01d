// Package training holds the rules a training session must satisfy before it
// is put on the club calendar. It sits on top of thaidate and does no I/O
package training

import (
	"fmt"
	"time"

	"clubhouse/internal/core/thaidate"
)

// DefaultLead is how far ahead a session must be booked
const DefaultLead = time.Hour

// SoonWindow is the span in which an upcoming session is shown as about to start
const SoonWindow = 24 * time.Hour

// Slot joins a validated date field and a validated time field
type Slot struct {
	Date thaidate.DateParts
	Time thaidate.TimeParts
}

// SlotFromResults builds a Slot from two masked field results; ok is false
// unless both are Valid
func SlotFromResults(d thaidate.DateResult, t thaidate.TimeResult) (Slot, bool) {
	if d.Verdict != thaidate.Valid || t.Verdict != thaidate.Valid || d.Parsed == nil || t.Parsed == nil {
		return Slot{}, false
	}
	return Slot{Date: *d.Parsed, Time: *t.Parsed}, true
}

// At returns the civil instant the slot starts at
func (s Slot) At() (thaidate.CivilInstant, error) {
	at, err := thaidate.NewCivilInstant(s.Date.Year, s.Date.Month, s.Date.Day, s.Time.Hour, s.Time.Minute)
	if err != nil {
		return thaidate.CivilInstant{}, fmt.Errorf("training slot: %w", err)
	}
	return at, nil
}

// IsValidTrainingTime reports whether at is at least lead after now
// A non positive lead falls back to DefaultLead
func IsValidTrainingTime(at, now thaidate.CivilInstant, lead time.Duration) bool {
	if lead <= 0 {
		lead = DefaultLead
	}
	return at.Sub(now) >= lead
}

// Compare orders two instants chronologically, -1, 0 or +1
func Compare(a, b thaidate.CivilInstant) int { return a.Compare(b) }

// Minutes returns the minute of day, 0..1439
func Minutes(at thaidate.CivilInstant) int { return at.Hour*60 + at.Minute }

// Timeline places a session relative to now for display
type Timeline string

const (
	TimelinePast  Timeline = "past"
	TimelineSoon  Timeline = "soon"
	TimelineLater Timeline = "later"
)

var timelineLabels = map[Timeline]string{
	TimelinePast:  "เสร็จสิ้น",
	TimelineSoon:  "ใกล้ถึงเวลา",
	TimelineLater: "กำลังจะมาถึง",
}

// Label is the Thai badge text
func (t Timeline) Label() string { return timelineLabels[t] }

// TimelineOf is past once at is behind now, soon within SoonWindow, later otherwise
func TimelineOf(at, now thaidate.CivilInstant) Timeline {
	switch {
	case Compare(at, now) < 0:
		return TimelinePast
	case at.Sub(now) < SoonWindow:
		return TimelineSoon
	default:
		return TimelineLater
	}
}
