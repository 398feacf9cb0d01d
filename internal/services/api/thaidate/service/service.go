// Package service renders and validates Thai calendar values for the api
package service

import (
	"context"
	"time"

	"clubhouse/internal/core/thaidate"
	perr "clubhouse/internal/platform/errors"
	"clubhouse/internal/services/api/thaidate/domain"
)

// Service defines the service contract
type Service interface{ domain.ServicePort }

// Svc implements Service on top of a clock
type Svc struct {
	cal thaidate.Validator
	loc *time.Location
}

// New builds the service; loc is the zone instants are read in (Bangkok when nil)
func New(clock thaidate.Clock, loc *time.Location) *Svc {
	if loc == nil {
		loc = thaidate.Bangkok
	}
	return &Svc{cal: thaidate.NewValidator(clock), loc: loc}
}

// Calendar exposes the clock bound validator to other modules
func (s *Svc) Calendar() thaidate.Validator { return s.cal }

// Format parses an RFC 3339 instant and renders it in the requested layout
// An empty layout is full; an unknown one gets the numeric form
func (s *Svc) Format(_ context.Context, in domain.FormatInput) (domain.FormatOutput, error) {
	t, err := time.Parse(time.RFC3339, in.At)
	if err != nil {
		return domain.FormatOutput{}, perr.WithField(perr.InvalidArgf("at must be an RFC 3339 timestamp"), "at")
	}
	layout := thaidate.LayoutFull
	if in.Layout != "" {
		if l, ok := thaidate.ParseLayout(in.Layout); ok {
			layout = l
		} else {
			layout = thaidate.Layout(in.Layout)
		}
	}
	ci := thaidate.FromTime(t, s.loc)
	return domain.FormatOutput{Layout: string(layout), Text: thaidate.Format(ci, layout)}, nil
}

// Validate runs one keystroke of a date or time field
func (s *Svc) Validate(_ context.Context, shape string, in domain.ValidateInput) (domain.ValidateOutput, error) {
	sh, ok := thaidate.ParseShape(shape)
	if !ok {
		return domain.ValidateOutput{}, perr.NotFoundf("unknown field shape %q", shape)
	}
	field := thaidate.NewInput(sh).Apply(in.Text, s.cal.Now())

	out := domain.ValidateOutput{
		Shape:       sh.String(),
		DisplayText: field.Display(),
		Result:      field.Result(),
		Ready:       field.Ready(),
	}
	if d, ok := field.Date(); ok {
		out.Date = &d
	}
	if t, ok := field.TimeOfDay(); ok {
		out.Time = &t
	}
	return out, nil
}

// Today renders now on the service clock
func (s *Svc) Today(context.Context) (domain.TodayOutput, error) {
	now := s.cal.Now()
	return domain.TodayOutput{
		Now:          now,
		BuddhistYear: now.BuddhistYear(),
		Date:         thaidate.Format(now, thaidate.LayoutDate),
		Time:         thaidate.Format(now, thaidate.LayoutTime),
		Full:         thaidate.Format(now, thaidate.LayoutFull),
		Numeric:      thaidate.Format(now, ""),
	}, nil
}
