// Package module wires schedules into the API using modkit
package module

import (
	"context"
	"time"

	"clubhouse/internal/core/thaidate"
	"clubhouse/internal/core/training"
	modkit "clubhouse/internal/modkit"
	"clubhouse/internal/modkit/httpkit"
	"clubhouse/internal/modkit/repokit"
	"clubhouse/internal/modkit/swaggerkit"
	"clubhouse/internal/services/api/schedules/domain"
	schedhttp "clubhouse/internal/services/api/schedules/http"
	schedrepo "clubhouse/internal/services/api/schedules/repo"
	schedsvc "clubhouse/internal/services/api/schedules/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b   modkit.Built
	svc schedsvc.Service
}

// New constructs a schedules module. A domain.Calendar passed with
// modkit.WithPorts is used for date checks, otherwise one is built on deps.Clock.
// With deps.PG the schema is created on the spot and a failure panics
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps = deps.WithDefaults()
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("schedules"),
		modkit.WithPrefix("/schedules"),
	}, opts...)...)

	cal, ok := b.Ports.(domain.Calendar)
	if !ok {
		cal = thaidate.NewValidator(deps.Clock)
	}
	opt := schedsvc.Options{
		Lead:  deps.Cfg.MayDuration("MIN_LEAD", training.DefaultLead),
		Retry: deps.Retry,
	}

	log := deps.Log.With().Str("module", b.Name).Logger()
	var s schedsvc.Service
	if deps.PG == nil {
		log.Warn().Msg("no database configured, schedules are kept in memory")
		s = schedsvc.NewMemory(schedrepo.NewMemory(), cal, opt)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := repokit.WithTx(ctx, deps.PG, func(q repokit.Queryer) error { return schedrepo.Migrate(ctx, q) }); err != nil {
			log.Panic().Err(err).Msg("schedules schema")
		}
		db := repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(deps.Cfg.MayDuration("STATEMENT_TIMEOUT", 5*time.Second)))
		s = schedsvc.New(db, schedrepo.NewPG(), cal, opt)
	}
	return &Module{b: b, svc: s}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { schedhttp.Register(rr, m.svc) })
}

// Ports returns the schedules domain.ServicePort
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Docs implements swaggerkit.Documented
func (m *Module) Docs() swaggerkit.SpecMutator { return schedhttp.Docs(m.b.Prefix) }
