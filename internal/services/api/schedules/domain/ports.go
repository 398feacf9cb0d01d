package domain

import (
	"context"

	"clubhouse/internal/core/thaidate"
)

// ServicePort defines the service contract for schedules
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Schedule, error)
	List(ctx context.Context, in ListInput) ([]Schedule, int, error)
	Get(ctx context.Context, id string) (Schedule, error)
	SetStatus(ctx context.Context, id string, in StatusInput) (Schedule, error)
	Delete(ctx context.Context, id string) error
}

// Calendar is the masked date and time checking this module borrows
type Calendar interface {
	Date(raw string) thaidate.DateResult
	Time(raw string) thaidate.TimeResult
	Now() thaidate.CivilInstant
}
