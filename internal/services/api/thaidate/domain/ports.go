package domain

import (
	"context"

	"clubhouse/internal/core/thaidate"
)

// ServicePort defines the service contract for the Thai calendar endpoints
type ServicePort interface {
	Format(ctx context.Context, in FormatInput) (FormatOutput, error)
	Validate(ctx context.Context, shape string, in ValidateInput) (ValidateOutput, error)
	Today(ctx context.Context) (TodayOutput, error)
}

// Calendar is what other modules borrow: masked field checks bound to the service clock
type Calendar interface {
	Date(raw string) thaidate.DateResult
	Time(raw string) thaidate.TimeResult
	Now() thaidate.CivilInstant
}

// Ports is the port set the module exposes
type Ports struct {
	Service  ServicePort
	Calendar Calendar
}
