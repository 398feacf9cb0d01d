package training

import (
	"time"

	"clubhouse/internal/core/textclean"
)

// PhaseKind names one block of a session
type PhaseKind string

const (
	PhaseWarmup   PhaseKind = "warmup"
	PhaseMain     PhaseKind = "main"
	PhaseCooldown PhaseKind = "cooldown"
)

// Phase is one timed block of a session plan
type Phase struct {
	Kind        PhaseKind `json:"kind"`
	Minutes     int       `json:"minutes"`
	Description string    `json:"description"`
}

// Content is the ordered plan of a session
type Content []Phase

// DefaultContent is the plan new sessions start from
func DefaultContent() Content {
	return Content{
		{Kind: PhaseWarmup, Minutes: 15, Description: "วอร์มอัพร่างกาย"},
		{Kind: PhaseMain, Minutes: 30, Description: "การฝึกหลัก"},
		{Kind: PhaseCooldown, Minutes: 15, Description: "คูลดาวน์"},
	}
}

// TotalDuration sums the phase lengths; negative minutes count as zero
func (c Content) TotalDuration() time.Duration {
	var total int
	for _, p := range c {
		if p.Minutes > 0 {
			total += p.Minutes
		}
	}
	return time.Duration(total) * time.Minute
}

// WithDefaults fills missing phases and blank descriptions from DefaultContent
// Phases keep the warm-up, main, cool-down order; unknown kinds are dropped
func (c Content) WithDefaults() Content {
	out := DefaultContent()
	for _, p := range c {
		for i := range out {
			if out[i].Kind != p.Kind {
				continue
			}
			if p.Minutes > 0 {
				out[i].Minutes = p.Minutes
			}
			if d := CleanText(p.Description); d != "" {
				out[i].Description = d
			}
		}
	}
	return out
}

// CleanText is how every stored text field is tidied, see textclean.Clean
func CleanText(s string) string { return textclean.Clean(s) }
