package store

import (
	"context"
	"fmt"

	perr "clubhouse/internal/platform/errors"
	"clubhouse/internal/platform/retry"
	"clubhouse/internal/platform/store/pg"

	"github.com/jackc/pgx/v5/pgxpool"
)

// openPG opens the pool and only hands out the adapter once a ping succeeds
func openPG(ctx context.Context, cfg PGConfig, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.URL,
		MaxConns: cfg.MaxConns,
		SlowMs:   cfg.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	policy := retry.Policy{Attempts: cfg.ConnectRetries, Step: cfg.RetryStep}
	err = retry.Do(ctx, policy, func(ctx context.Context) error {
		if err := pingPool(ctx, p.Pool, cfg); err != nil {
			// flattened so a per-ping timeout stays retryable
			return perr.Unavailablef("postgres ping: %v", err)
		}
		return nil
	})
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	s.Log.Info().Int32("max_conns", p.Pool.Config().MaxConns).Msg("postgres ready")
	return newPGAdapter(p), nil
}

// pingPool pings the pool directly so boot pings never reach the tracer
var pingPool = func(ctx context.Context, pool *pgxpool.Pool, cfg PGConfig) error {
	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}
	return pool.Ping(ctx)
}
