package training

// Status is the lifecycle state stored with a schedule
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus accepts the three stored values only
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusUpcoming, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

// CanMoveTo reports whether a schedule in s may be set to next
// Completed and cancelled are terminal; setting the current status again is allowed
func (s Status) CanMoveTo(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusUpcoming && (next == StatusCompleted || next == StatusCancelled)
}
