// Package retry runs an operation a bounded number of times with a linear backoff
package retry

import (
	"context"
	"time"

	perr "clubhouse/internal/platform/errors"
	"clubhouse/internal/platform/logger"
)

const (
	DefaultAttempts = 3
	DefaultStep     = time.Second
)

// Policy waits Step*n after the nth failed attempt
type Policy struct {
	Attempts int
	Step     time.Duration
}

// Default is three attempts, one second apart and growing
func Default() Policy { return Policy{Attempts: DefaultAttempts, Step: DefaultStep} }

func (p Policy) normalize() Policy {
	if p.Attempts <= 0 {
		p.Attempts = DefaultAttempts
	}
	if p.Step < 0 {
		p.Step = 0
	}
	return p
}

// sleep is a seam for tests
var sleep = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do calls op until it succeeds, returns a permanent error or the attempts run out.
// The last error is returned as is so callers keep its code.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	p = p.normalize()
	log := logger.C(ctx)

	var err error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if cerr := ctx.Err(); cerr != nil {
			if err != nil {
				return err
			}
			return cerr
		}
		if err = op(ctx); err == nil {
			return nil
		}
		if perr.IsPermanent(err) {
			return err
		}
		if attempt == p.Attempts {
			break
		}

		wait := p.Step * time.Duration(attempt)
		log.Warn().Err(err).
			Int("attempt", attempt).
			Int("of", p.Attempts).
			Dur("wait", wait).
			Msg("operation failed, retrying")

		if serr := sleep(ctx, wait); serr != nil {
			return err
		}
	}
	return err
}

// Value is Do for operations that produce a result
func Value[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := Do(ctx, p, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
