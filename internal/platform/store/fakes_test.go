package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRows serves data to both the store Rows seam and pgx.Rows
type fakeRows struct {
	cols   []string
	data   [][]any
	i      int
	err    error
	closed bool
}

func newRows(cols []string, data ...[]any) *fakeRows { return &fakeRows{cols: cols, data: data, i: -1} }

func (r *fakeRows) Next() bool {
	if r.i+1 >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.i < 0 || r.i >= len(r.data) {
		return errors.New("scan out of range")
	}
	for k, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = r.data[r.i][k].(int)
		case *string:
			*p = r.data[r.i][k].(string)
		}
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Columns() []string { return r.cols }

// pgx.Rows extras
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		out[i].Name = c
	}
	return out
}
func (r *fakeRows) Values() ([]any, error) { return r.data[r.i], nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakePgx implements pgxQuerier and pgx.Tx
type fakePgx struct {
	affected   int64
	execErr    error
	rows       *fakeRows
	queryErr   error
	rowScan    func(dest ...any) error
	committed  bool
	rolledBack bool
	stmts      []string
}

func (f *fakePgx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.stmts = append(f.stmts, sql)
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag("UPDATE " + strconv.FormatInt(f.affected, 10)), nil
}

func (f *fakePgx) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	f.stmts = append(f.stmts, sql)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakePgx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.stmts = append(f.stmts, sql)
	return fakeRow{scan: f.rowScan}
}

func (f *fakePgx) Begin(context.Context) (pgx.Tx, error) { return f, nil }
func (f *fakePgx) Commit(context.Context) error          { f.committed = true; return nil }
func (f *fakePgx) Rollback(context.Context) error        { f.rolledBack = true; return nil }
func (f *fakePgx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not implemented")
}
func (f *fakePgx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (f *fakePgx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (f *fakePgx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not implemented")
}
func (f *fakePgx) Conn() *pgx.Conn { return nil }
