// Package modkit provides module wiring and core deps
package modkit

import (
	"clubhouse/internal/core/thaidate"
	"clubhouse/internal/modkit/repokit"
	"clubhouse/internal/platform/config"
	"clubhouse/internal/platform/logger"
	"clubhouse/internal/platform/retry"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// PG is nil when no database is configured; modules fall back to memory
	PG repokit.TxRunner

	Clock thaidate.Clock
	Retry retry.Policy
}

// WithDefaults fills the clock and retry policy when they were left zero
func (d Deps) WithDefaults() Deps {
	if d.Clock == nil {
		d.Clock = thaidate.SystemClock{}
	}
	if d.Retry == (retry.Policy{}) {
		d.Retry = retry.Default()
	}
	return d
}

// FromConfig reads the clock zone and retry policy from cfg
// CLUB_API_TIMEZONE, CLUB_API_RETRY_ATTEMPTS and CLUB_API_RETRY_STEP with the usual prefix
func FromConfig(cfg config.Conf, pg repokit.TxRunner) Deps {
	return Deps{
		Log: logger.Named("api").With().Logger(),
		Cfg: cfg,
		PG:  pg,
		Clock: thaidate.SystemClock{
			Loc: cfg.MayLocation("TIMEZONE", thaidate.Bangkok),
		},
		Retry: retry.Policy{
			Attempts: cfg.MayInt("RETRY_ATTEMPTS", retry.DefaultAttempts),
			Step:     cfg.MayDuration("RETRY_STEP", retry.DefaultStep),
		},
	}
}
