package repokit

import (
	"context"
	"fmt"
	"time"
)

// DefaultPingTimeout bounds Ping when ctx carries no deadline
const DefaultPingTimeout = 2 * time.Second

type guarder interface {
	Guard(context.Context) error
}

// Ping asks p to answer within DefaultPingTimeout unless ctx already has a deadline
func Ping(ctx context.Context, name string, p interface{ Ping(context.Context) error }) error {
	if p == nil {
		return fmt.Errorf("%s: nil dependency", name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultPingTimeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", name, err)
	}
	return nil
}

// MustGuard runs Guard and panics on any error, for service startup
func MustGuard(ctx context.Context, st guarder) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
