package service

import (
	"context"
	"encoding/json"
	"fmt"

	"clubhouse/internal/core/thaidate"
	"clubhouse/internal/core/training"
	"clubhouse/internal/platform/logger"
	"clubhouse/internal/services/api/schedules/domain"
	"clubhouse/internal/services/api/schedules/repo"
)

// view renders a stored row against the current clock
func (s *Svc) view(ctx context.Context, row repo.ScheduleRow) domain.Schedule {
	y, m, d := row.Day.Date()
	at := thaidate.CivilInstant{
		Year:   y,
		Month:  int(m),
		Day:    d,
		Hour:   row.MinuteOfDay / 60,
		Minute: row.MinuteOfDay % 60,
	}

	var content training.Content
	if len(row.Content) > 0 {
		if err := json.Unmarshal(row.Content, &content); err != nil {
			logger.C(ctx).Warn().Err(err).
				Str("schedule_id", row.ID.String()).
				Msg("stored content unreadable, showing default phases")
			content = nil
		}
	}
	content = content.WithDefaults()

	tl := training.TimelineOf(at, s.cal.Now())
	out := domain.Schedule{
		ID:              row.ID,
		Title:           row.Title,
		Location:        row.Location,
		Description:     row.Description,
		At:              at,
		Date:            fmt.Sprintf("%02d/%02d/%04d", at.Day, at.Month, at.BuddhistYear()),
		Time:            fmt.Sprintf("%02d:%02d", at.Hour, at.Minute),
		DateText:        thaidate.Format(at, thaidate.LayoutDate),
		TimeText:        thaidate.Format(at, thaidate.LayoutTime),
		WhenText:        thaidate.Format(at, thaidate.LayoutFull),
		Status:          training.Status(row.Status),
		Timeline:        tl,
		TimelineLabel:   tl.Label(),
		MaxParticipants: row.MaxParticipants,
		Participants:    make([]domain.Participant, 0, len(row.Participants)),
		Content:         content,
		TotalMinutes:    int(content.TotalDuration().Minutes()),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	for _, p := range row.Participants {
		out.Participants = append(out.Participants, domain.Participant{ID: p.ID, Name: p.Name})
	}
	return out
}
