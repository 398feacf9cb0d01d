// Package repo provides postgres and in memory access for schedules
package repo

import (
	"context"
	_ "embed"
	"strings"
	"time"

	"clubhouse/internal/modkit/repokit"
	perr "clubhouse/internal/platform/errors"
	"clubhouse/internal/platform/store"

	"github.com/google/uuid"
)

// DefaultLimit and MaxLimit bound List
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Repo defines the repository contract for schedules
type Repo interface {
	Insert(ctx context.Context, row ScheduleRow) error
	Get(ctx context.Context, id uuid.UUID) (ScheduleRow, error)
	List(ctx context.Context, f Filter) ([]ScheduleRow, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, from, to string, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ScheduleRow is a stored session; Day is the civil date at UTC midnight
type ScheduleRow struct {
	ID              uuid.UUID
	Title           string
	Location        string
	Description     string
	Day             time.Time
	MinuteOfDay     int
	Status          string
	MaxParticipants int
	Content         []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Participants    []ParticipantRow
}

// ParticipantRow is one booked person, kept in booking order
type ParticipantRow struct {
	ID   uuid.UUID
	Name string
}

// Filter narrows List; an empty Status matches all
type Filter struct {
	Status string
	Limit  int
}

// Normalize clamps Limit into 1..MaxLimit, defaulting to DefaultLimit
func (f Filter) Normalize() Filter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

//go:embed schema.sql
var schema string

// Statements splits the embedded schema into single statements
func Statements() []string {
	var out []string
	for _, s := range strings.Split(schema, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Migrate creates the tables when missing
func Migrate(ctx context.Context, q repokit.Queryer) error {
	if err := store.ExecScript(ctx, q, Statements()...); err != nil {
		return perr.FromPostgres(err, "migrate schedules")
	}
	return nil
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const selectSchedule = `
select id::text, title, location, description, day, minute_of_day, status,
max_participants, content, created_at, updated_at
from schedules
`

func scanSchedule(r store.Row) (ScheduleRow, error) {
	var (
		row    ScheduleRow
		id     string
		minute int16
	)
	if err := r.Scan(
		&id,
		&row.Title,
		&row.Location,
		&row.Description,
		&row.Day,
		&minute,
		&row.Status,
		&row.MaxParticipants,
		&row.Content,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		return ScheduleRow{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ScheduleRow{}, err
	}
	row.ID = parsed
	row.MinuteOfDay = int(minute)
	return row, nil
}

type participantScan struct {
	scheduleID string
	row        ParticipantRow
}

func scanParticipant(r store.Row) (participantScan, error) {
	var (
		p  participantScan
		id string
	)
	if err := r.Scan(&p.scheduleID, &id, &p.row.Name); err != nil {
		return p, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return p, err
	}
	p.row.ID = parsed
	return p, nil
}

func (r *queries) Insert(ctx context.Context, row ScheduleRow) error {
	const ins = `
insert into schedules (id, title, location, description, day, minute_of_day, status,
max_participants, content, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	if err := store.ExecOne(ctx, r.q, ins,
		row.ID,
		row.Title,
		row.Location,
		row.Description,
		row.Day,
		int16(row.MinuteOfDay),
		row.Status,
		row.MaxParticipants,
		row.Content,
		row.CreatedAt,
		row.UpdatedAt,
	); err != nil {
		return perr.FromPostgres(err, "insert schedule")
	}

	const insP = `insert into schedule_participants (schedule_id, position, id, name) values ($1, $2, $3, $4)`
	for i, p := range row.Participants {
		if err := store.ExecOne(ctx, r.q, insP, row.ID, int16(i), p.ID, p.Name); err != nil {
			return perr.FromPostgres(err, "insert participant")
		}
	}
	return nil
}

func (r *queries) Get(ctx context.Context, id uuid.UUID) (ScheduleRow, error) {
	row, err := store.One(ctx, r.q, scanSchedule, selectSchedule+`where id = $1`, id)
	if err != nil {
		return ScheduleRow{}, perr.FromPostgres(err, "get schedule")
	}
	rows := []ScheduleRow{row}
	if err := r.attach(ctx, rows); err != nil {
		return ScheduleRow{}, err
	}
	return rows[0], nil
}

func (r *queries) List(ctx context.Context, f Filter) ([]ScheduleRow, int, error) {
	f = f.Normalize()
	total, err := store.Scalar[int64](ctx, r.q, `select count(*) from schedules where ($1 = '' or status = $1)`, f.Status)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "count schedules")
	}
	rows, err := store.Many(ctx, r.q, scanSchedule,
		selectSchedule+`where ($1 = '' or status = $1) order by created_at desc, id limit $2`,
		f.Status, f.Limit)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "list schedules")
	}
	if err := r.attach(ctx, rows); err != nil {
		return nil, 0, err
	}
	return rows, int(total), nil
}

// attach loads participants for rows in one query
func (r *queries) attach(ctx context.Context, rows []ScheduleRow) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]string, len(rows))
	at := make(map[string]int, len(rows))
	for i, row := range rows {
		ids[i] = row.ID.String()
		at[ids[i]] = i
		rows[i].Participants = []ParticipantRow{}
	}
	ps, err := store.Many(ctx, r.q, scanParticipant, `
select schedule_id::text, id::text, name
from schedule_participants
where schedule_id = any($1::text[]::uuid[])
order by schedule_id, position
`, ids)
	if err != nil {
		return perr.FromPostgres(err, "list participants")
	}
	for _, p := range ps {
		if i, ok := at[p.scheduleID]; ok {
			rows[i].Participants = append(rows[i].Participants, p.row)
		}
	}
	return nil
}

func (r *queries) SetStatus(ctx context.Context, id uuid.UUID, from, to string, at time.Time) error {
	err := store.ExecOne(ctx, r.q,
		`update schedules set status = $3, updated_at = $4 where id = $1 and status = $2`,
		id, from, to, at)
	if err != nil {
		return perr.FromPostgres(err, "set schedule status")
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id uuid.UUID) error {
	if err := store.ExecOne(ctx, r.q, `delete from schedules where id = $1`, id); err != nil {
		return perr.FromPostgres(err, "delete schedule")
	}
	return nil
}
