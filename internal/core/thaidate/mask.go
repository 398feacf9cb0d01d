package thaidate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Verdict is the three state outcome of checking a masked field
type Verdict uint8

const (
	// Incomplete means the field is shorter than its mask; no message is shown
	Incomplete Verdict = iota
	// Valid means the text fills the mask and passes every semantic check
	Valid
	// Invalid means the text fills the mask but fails a check; Reason says which
	Invalid
)

// String returns the lower case verdict name
func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "incomplete"
	}
}

// MarshalText encodes the verdict by name
func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText accepts the names MarshalText writes
func (v *Verdict) UnmarshalText(b []byte) error {
	switch string(b) {
	case "incomplete":
		*v = Incomplete
	case "valid":
		*v = Valid
	case "invalid":
		*v = Invalid
	default:
		return fmt.Errorf("thaidate: unknown verdict %q", b)
	}
	return nil
}

// Reason tells Invalid verdicts apart
type Reason string

const (
	// ReasonNone accompanies Incomplete and Valid
	ReasonNone Reason = ""
	// ReasonMalformed is a full length date that does not fit dd/mm/yyyy
	ReasonMalformed Reason = "malformed"
	// ReasonBadDate is a well formed date that is not on the calendar, e.g. 31/02
	ReasonBadDate Reason = "bad_date"
	// ReasonPastDate is a real date earlier than today
	ReasonPastDate Reason = "past_date"
	// ReasonBadTime is a full length time that fails the hh:mm acceptance pattern
	ReasonBadTime Reason = "bad_time"
)

// User facing messages, shown under the field
const (
	MsgBadDate       = "วันที่ไม่ถูกต้องหรือเป็นวันที่ผ่านมาแล้ว"
	MsgMalformedDate = "รูปแบบวันที่ไม่ถูกต้อง"
	MsgBadTime       = "รูปแบบเวลาไม่ถูกต้อง"
)

const (
	dateSep = '/'
	timeSep = ':'

	// DateMaskLen is len("dd/mm/yyyy")
	DateMaskLen = 10
	// TimeMaskLen is len("hh:mm")
	TimeMaskLen = 5
)

var (
	dateShape = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	timeShape = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// Result is a verdict plus the reason and message for Invalid
type Result struct {
	Verdict Verdict `json:"verdict"`
	Reason  Reason  `json:"reason,omitempty"`
	Message string  `json:"message,omitempty"`
}

func invalid(r Reason, msg string) Result { return Result{Verdict: Invalid, Reason: r, Message: msg} }

// DateParts is a validated date; Year is Gregorian
type DateParts struct {
	Day          int `json:"day"`
	Month        int `json:"month"`
	Year         int `json:"year"`
	BuddhistYear int `json:"buddhist_year"`
}

// Civil returns the date at midnight
func (d DateParts) Civil() CivilInstant {
	return CivilInstant{Year: d.Year, Month: d.Month, Day: d.Day}
}

// TimeParts is a validated time of day
type TimeParts struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// DateResult is what the field shows after an edit
type DateResult struct {
	DisplayText string `json:"display_text"`
	Result
	Parsed *DateParts `json:"parsed,omitempty"`
}

// TimeResult is what the field shows after an edit
type TimeResult struct {
	DisplayText string `json:"display_text"`
	Result
	Parsed *TimeParts `json:"parsed,omitempty"`
}

// ReshapeDate filters raw and auto inserts the day/month and month/year
// separators once enough digits are present; "01012567" becomes "01/01/2567"
func ReshapeDate(raw string) string {
	s := FilterInput(raw, dateSep)
	if len(s) >= 2 && strings.IndexByte(s, dateSep) < 0 {
		s = s[:2] + string(dateSep) + s[2:]
	}
	if strings.Count(s, string(dateSep)) == 1 {
		i := strings.IndexByte(s, dateSep)
		if tail := s[i+1:]; len(tail) >= 2 {
			s = s[:i+1] + tail[:2] + string(dateSep) + tail[2:]
		}
	}
	return s
}

// ReshapeTime filters raw and inserts the hour/minute separator after two digits
func ReshapeTime(raw string) string {
	s := FilterInput(raw, timeSep)
	if len(s) >= 2 && strings.IndexByte(s, timeSep) < 0 {
		s = s[:2] + string(timeSep) + s[2:]
	}
	return s
}

// ValidateDateInput checks the full current text of a dd/mm/yyyy field
// The year is typed in Buddhist Era. today is accepted, anything before the
// date part of now is not
func ValidateDateInput(raw string, now CivilInstant) DateResult {
	display := ReshapeDate(raw)
	out := DateResult{DisplayText: display}

	m := dateShape.FindStringSubmatch(display)
	if m == nil {
		if len(display) >= DateMaskLen {
			out.Result = invalid(ReasonMalformed, MsgMalformedDate)
		}
		return out
	}

	// the pattern guarantees digits, Atoi cannot fail
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	be, _ := strconv.Atoi(m[3])
	year := FromBuddhistYear(be)

	if !IsValidCivilDate(year, month, day) {
		out.Result = invalid(ReasonBadDate, MsgBadDate)
		return out
	}
	parts := DateParts{Day: day, Month: month, Year: year, BuddhistYear: be}
	if parts.Civil().BeforeDate(now) {
		out.Result = invalid(ReasonPastDate, MsgBadDate)
		return out
	}

	out.Result = Result{Verdict: Valid}
	out.Parsed = &parts
	return out
}

// ValidateTimeInput checks the full current text of an hh:mm field
func ValidateTimeInput(raw string) TimeResult {
	display := ReshapeTime(raw)
	out := TimeResult{DisplayText: display}

	m := timeShape.FindStringSubmatch(display)
	if m == nil {
		if len(display) >= TimeMaskLen {
			out.Result = invalid(ReasonBadTime, MsgBadTime)
		}
		return out
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	out.Result = Result{Verdict: Valid}
	out.Parsed = &TimeParts{Hour: hour, Minute: minute}
	return out
}

// Validator binds the date check to a Clock so callers never pass now by hand
type Validator struct{ clock Clock }

// NewValidator panics on a nil clock
func NewValidator(c Clock) Validator {
	if c == nil {
		panic("thaidate.Validator requires a non nil Clock")
	}
	return Validator{clock: c}
}

// Date validates raw against today on the bound clock
func (v Validator) Date(raw string) DateResult { return ValidateDateInput(raw, v.clock.Now()) }

// Time validates raw; time of day has no clock dependency
func (v Validator) Time(raw string) TimeResult { return ValidateTimeInput(raw) }

// Now exposes the bound clock
func (v Validator) Now() CivilInstant { return v.clock.Now() }
