// Package service contains schedules workflows
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clubhouse/internal/core/thaidate"
	"clubhouse/internal/core/training"
	"clubhouse/internal/modkit/repokit"
	perr "clubhouse/internal/platform/errors"
	"clubhouse/internal/platform/logger"
	"clubhouse/internal/platform/retry"
	"clubhouse/internal/services/api/schedules/domain"
	"clubhouse/internal/services/api/schedules/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for schedules
type Service interface{ domain.ServicePort }

// Options tune a Svc; zero values take the defaults
type Options struct {
	Lead  time.Duration
	Retry retry.Policy

	// NewID and Now are swapped in tests
	NewID func() uuid.UUID
	Now   func() time.Time
}

// Svc implements the Service interface
// With a TxRunner every call runs in a Postgres tx; without one it uses Memory
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	mem    repo.Repo
	cal    domain.Calendar
	opt    Options
}

// New creates a Postgres backed service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cal domain.Calendar, opt Options) *Svc {
	if db == nil {
		panic("schedules.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("schedules.Service requires a non nil Repo binder")
	}
	return newSvc(&Svc{db: db, binder: binder, cal: cal, opt: opt})
}

// NewMemory creates a service over an in process repo
func NewMemory(r repo.Repo, cal domain.Calendar, opt Options) *Svc {
	if r == nil {
		panic("schedules.Service requires a non nil Repo")
	}
	return newSvc(&Svc{mem: r, cal: cal, opt: opt})
}

func newSvc(s *Svc) *Svc {
	if s.cal == nil {
		panic("schedules.Service requires a Calendar")
	}
	if s.opt.Lead <= 0 {
		s.opt.Lead = training.DefaultLead
	}
	if s.opt.Retry == (retry.Policy{}) {
		s.opt.Retry = retry.Default()
	}
	if s.opt.NewID == nil {
		s.opt.NewID = uuid.New
	}
	if s.opt.Now == nil {
		s.opt.Now = time.Now
	}
	return s
}

// run executes fn against a bound repo, retrying transient failures
func (s *Svc) run(ctx context.Context, fn func(ctx context.Context, r repo.Repo) error) error {
	return retry.Do(ctx, s.opt.Retry, func(ctx context.Context) error {
		if s.db == nil {
			return fn(ctx, s.mem)
		}
		return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
			return fn(ctx, repokit.MustBind(s.binder, q))
		})
	})
}

// read is run for lookups that hand a value back
func read[T any](ctx context.Context, s *Svc, fn func(ctx context.Context, r repo.Repo) (T, error)) (T, error) {
	return retry.Value(ctx, s.opt.Retry, func(ctx context.Context) (T, error) {
		if s.db == nil {
			return fn(ctx, s.mem)
		}
		return repokit.WithTxValue(ctx, s.db, func(q repokit.Queryer) (T, error) {
			return fn(ctx, repokit.MustBind(s.binder, q))
		})
	})
}

func fieldMsg(res thaidate.Result, fallback string) string {
	if res.Message != "" {
		return res.Message
	}
	return fallback
}

func leadText(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%d ชั่วโมง", int(d/time.Hour))
	}
	return fmt.Sprintf("%d นาที", int(d/time.Minute))
}

// slot checks the masked date and time and the booking lead
func (s *Svc) slot(in domain.CreateInput) (thaidate.CivilInstant, error) {
	d := s.cal.Date(in.Date)
	t := s.cal.Time(in.Time)

	fields := map[string]string{}
	if d.Verdict != thaidate.Valid {
		fields["date"] = fieldMsg(d.Result, thaidate.MsgMalformedDate)
	}
	if t.Verdict != thaidate.Valid {
		fields["time"] = fieldMsg(t.Result, thaidate.MsgBadTime)
	}
	sl, ok := training.SlotFromResults(d, t)
	if !ok {
		first := "date"
		if _, bad := fields["date"]; !bad {
			first = "time"
		}
		return thaidate.CivilInstant{}, perr.WithField(perr.Validation(fields[first], fields), first)
	}

	at, err := sl.At()
	if err != nil {
		return thaidate.CivilInstant{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid training slot")
	}
	if !training.IsValidTrainingTime(at, s.cal.Now(), s.opt.Lead) {
		msg := "เวลาฝึกซ้อมต้องอยู่ในอนาคตอย่างน้อย " + leadText(s.opt.Lead)
		return thaidate.CivilInstant{}, perr.WithField(perr.Validation(msg, map[string]string{"time": msg}), "time")
	}
	return at, nil
}

// Create validates, books and stores a new upcoming session
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Schedule, error) {
	at, err := s.slot(in)
	if err != nil {
		return domain.Schedule{}, err
	}
	if len(in.Participants) > in.MaxParticipants {
		return domain.Schedule{}, perr.WithField(perr.Validation(domain.MsgTooManyParticipants,
			map[string]string{"participants": domain.MsgTooManyParticipants}), "participants")
	}

	content, err := json.Marshal(in.Content.WithDefaults())
	if err != nil {
		return domain.Schedule{}, perr.Wrap(err, perr.ErrorCodeUnknown, "encode content")
	}
	now := s.opt.Now().UTC()
	row := repo.ScheduleRow{
		ID:              s.opt.NewID(),
		Title:           training.CleanText(in.Title),
		Location:        training.CleanText(in.Location),
		Description:     training.CleanText(in.Description),
		Day:             at.DateOnly().Time(time.UTC),
		MinuteOfDay:     training.Minutes(at),
		Status:          string(training.StatusUpcoming),
		MaxParticipants: in.MaxParticipants,
		Content:         content,
		CreatedAt:       now,
		UpdatedAt:       now,
		Participants:    make([]repo.ParticipantRow, 0, len(in.Participants)),
	}
	for _, p := range in.Participants {
		row.Participants = append(row.Participants, repo.ParticipantRow{ID: s.opt.NewID(), Name: training.CleanText(p.Name)})
	}

	if err := s.run(ctx, func(ctx context.Context, r repo.Repo) error { return r.Insert(ctx, row) }); err != nil {
		return domain.Schedule{}, perr.WithOp(err, "schedules.Create")
	}
	logger.C(ctx).Info().
		Str("schedule_id", row.ID.String()).
		Str("at", at.String()).
		Int("participants", len(row.Participants)).
		Msg("schedule created")
	return s.view(ctx, row), nil
}

// List returns the newest sessions first and the unlimited match count
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Schedule, int, error) {
	if in.Status != "" {
		if _, ok := training.ParseStatus(in.Status); !ok {
			return nil, 0, perr.WithField(perr.InvalidArgf("unknown status %q", in.Status), "status")
		}
	}
	type page struct {
		rows  []repo.ScheduleRow
		total int
	}
	p, err := read(ctx, s, func(ctx context.Context, r repo.Repo) (page, error) {
		rows, total, err := r.List(ctx, repo.Filter{Status: in.Status, Limit: in.Limit})
		return page{rows, total}, err
	})
	if err != nil {
		return nil, 0, perr.WithOp(err, "schedules.List")
	}
	out := make([]domain.Schedule, 0, len(p.rows))
	for _, row := range p.rows {
		out = append(out, s.view(ctx, row))
	}
	return out, p.total, nil
}

func parseID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, perr.WithField(perr.InvalidArgf("id must be a uuid"), "id")
	}
	return u, nil
}

// Get returns one session
func (s *Svc) Get(ctx context.Context, id string) (domain.Schedule, error) {
	u, err := parseID(id)
	if err != nil {
		return domain.Schedule{}, err
	}
	row, err := read(ctx, s, func(ctx context.Context, r repo.Repo) (repo.ScheduleRow, error) {
		return r.Get(ctx, u)
	})
	if err != nil {
		return domain.Schedule{}, perr.WithOp(err, "schedules.Get")
	}
	return s.view(ctx, row), nil
}

// SetStatus moves a session along upcoming -> completed | cancelled
func (s *Svc) SetStatus(ctx context.Context, id string, in domain.StatusInput) (domain.Schedule, error) {
	u, err := parseID(id)
	if err != nil {
		return domain.Schedule{}, err
	}
	next, ok := training.ParseStatus(in.Status)
	if !ok {
		return domain.Schedule{}, perr.WithField(perr.InvalidArgf("unknown status %q", in.Status), "status")
	}

	var row repo.ScheduleRow
	err = s.run(ctx, func(ctx context.Context, r repo.Repo) error {
		var err error
		if row, err = r.Get(ctx, u); err != nil {
			return err
		}
		cur := training.Status(row.Status)
		if cur == next {
			return nil
		}
		if !cur.CanMoveTo(next) {
			return perr.WithField(perr.Conflictf("schedule is %s and cannot become %s", cur, next), "status")
		}
		at := s.opt.Now().UTC()
		if err := r.SetStatus(ctx, u, string(cur), string(next), at); err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return perr.Conflictf("schedule changed while updating, reload and retry")
			}
			return err
		}
		row.Status, row.UpdatedAt = string(next), at
		return nil
	})
	if err != nil {
		return domain.Schedule{}, perr.WithOp(err, "schedules.SetStatus")
	}
	return s.view(ctx, row), nil
}

// Delete removes a session and its participants
func (s *Svc) Delete(ctx context.Context, id string) error {
	u, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.run(ctx, func(ctx context.Context, r repo.Repo) error { return r.Delete(ctx, u) }); err != nil {
		return perr.WithOp(err, "schedules.Delete")
	}
	logger.C(ctx).Info().Str("schedule_id", u.String()).Msg("schedule deleted")
	return nil
}
