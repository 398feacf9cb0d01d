// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"clubhouse/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction using the provided TxRunner
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// WithTxValue is WithTx for a fn that produces a value
func WithTxValue[T any](ctx context.Context, tx TxRunner, fn func(q Queryer) (T, error)) (T, error) {
	var out T
	err := tx.Tx(ctx, func(q Queryer) error {
		v, err := fn(q)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
