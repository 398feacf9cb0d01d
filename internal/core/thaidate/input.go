package thaidate

import "fmt"

// Shape selects the mask a field coerces digits into
type Shape uint8

const (
	// ShapeDate is dd/mm/yyyy with a Buddhist Era year
	ShapeDate Shape = iota + 1
	// ShapeTime is hh:mm
	ShapeTime
)

func (s Shape) String() string {
	switch s {
	case ShapeDate:
		return "date"
	case ShapeTime:
		return "time"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// ParseShape accepts "date" or "time"
func ParseShape(s string) (Shape, bool) {
	switch s {
	case "date":
		return ShapeDate, true
	case "time":
		return ShapeTime, true
	}
	return 0, false
}

// Input is the state of one masked field
// Values are immutable; Apply returns the next state and leaves the receiver alone
type Input struct {
	shape   Shape
	raw     string
	display string
	result  Result
	date    *DateParts
	clock   *TimeParts
}

// NewInput returns an empty field of the given shape; it panics on an unknown shape
func NewInput(shape Shape) Input {
	if shape != ShapeDate && shape != ShapeTime {
		panic(fmt.Sprintf("thaidate: unknown input %s", shape))
	}
	return Input{shape: shape}
}

// Apply reprocesses the full current text of the field
// now is only consulted for dates
func (in Input) Apply(text string, now CivilInstant) Input {
	next := Input{shape: in.shape}
	switch in.shape {
	case ShapeDate:
		next.raw = FilterInput(text, dateSep)
		r := ValidateDateInput(text, now)
		next.display, next.result = r.DisplayText, r.Result
		if r.Parsed != nil {
			p := *r.Parsed
			next.date = &p
		}
	case ShapeTime:
		next.raw = FilterInput(text, timeSep)
		r := ValidateTimeInput(text)
		next.display, next.result = r.DisplayText, r.Result
		if r.Parsed != nil {
			p := *r.Parsed
			next.clock = &p
		}
	default:
		panic(fmt.Sprintf("thaidate: unknown input %s", in.shape))
	}
	return next
}

// Reset returns a fresh empty field of the same shape
func (in Input) Reset() Input { return NewInput(in.shape) }

func (in Input) Shape() Shape { return in.shape }

// Raw is the folded digits and separators before the mask inserts anything
func (in Input) Raw() string      { return in.raw }
func (in Input) Display() string  { return in.display }
func (in Input) Verdict() Verdict { return in.result.Verdict }
func (in Input) Reason() Reason   { return in.result.Reason }
func (in Input) Message() string  { return in.result.Message }
func (in Input) Result() Result   { return in.result }

// Ready reports whether the surrounding form may submit this field
func (in Input) Ready() bool { return in.result.Verdict == Valid }

// Date returns the parsed date once a date field is Valid
func (in Input) Date() (DateParts, bool) {
	if in.date == nil {
		return DateParts{}, false
	}
	return *in.date, true
}

// TimeOfDay returns the parsed time once a time field is Valid
func (in Input) TimeOfDay() (TimeParts, bool) {
	if in.clock == nil {
		return TimeParts{}, false
	}
	return *in.clock, true
}
