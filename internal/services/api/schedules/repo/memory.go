package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	perr "clubhouse/internal/platform/errors"

	"github.com/google/uuid"
)

// Memory is a process local Repo used when no database is configured and in tests
type Memory struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]ScheduleRow
}

// NewMemory returns an empty store
func NewMemory() *Memory { return &Memory{rows: map[uuid.UUID]ScheduleRow{}} }

func clone(r ScheduleRow) ScheduleRow {
	r.Content = slices.Clone(r.Content)
	r.Participants = slices.Clone(r.Participants)
	if r.Participants == nil {
		r.Participants = []ParticipantRow{}
	}
	return r
}

// Insert stores row; an existing id is a duplicate key
func (m *Memory) Insert(_ context.Context, row ScheduleRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[row.ID]; ok {
		return perr.WithField(perr.DuplicateKeyf("schedule %s already exists", row.ID), "id")
	}
	m.rows[row.ID] = clone(row)
	return nil
}

func (m *Memory) Get(_ context.Context, id uuid.UUID) (ScheduleRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	row, ok := m.rows[id]
	if !ok {
		return ScheduleRow{}, perr.ErrNotFound
	}
	return clone(row), nil
}

// List orders newest first like the Postgres query, ties broken by id
func (m *Memory) List(_ context.Context, f Filter) ([]ScheduleRow, int, error) {
	f = f.Normalize()
	m.mu.RLock()
	out := make([]ScheduleRow, 0, len(m.rows))
	for _, row := range m.rows {
		if f.Status == "" || row.Status == f.Status {
			out = append(out, clone(row))
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b ScheduleRow) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	total := len(out)
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, total, nil
}

// SetStatus only applies when the stored status is still from
func (m *Memory) SetStatus(_ context.Context, id uuid.UUID, from, to string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok || row.Status != from {
		return perr.ErrNotFound
	}
	row.Status = to
	row.UpdatedAt = at
	m.rows[id] = row
	return nil
}

func (m *Memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return perr.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

var _ Repo = (*Memory)(nil)
