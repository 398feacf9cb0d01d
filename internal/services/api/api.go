// Package api provides the HTTP API for the application
package api

import (
	"clubhouse/internal/platform/config"
	"clubhouse/internal/platform/logger"
	phttp "clubhouse/internal/platform/net/http"
	"clubhouse/internal/platform/store"

	"clubhouse/internal/modkit"
	"clubhouse/internal/modkit/httpkit"
	"clubhouse/internal/modkit/module"
	"clubhouse/internal/modkit/swaggerkit"

	metamod "clubhouse/internal/services/api/meta/module"
	schedom "clubhouse/internal/services/api/schedules/domain"
	schedmod "clubhouse/internal/services/api/schedules/module"
	tdmod "clubhouse/internal/services/api/thaidate/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Deps overrides what would be read from Config, for tests
	Deps *modkit.Deps
}

// Mount mounts the API service onto the given router and returns the modules
// in mount order
func Mount(r phttp.Router, opt Options) []module.Module {
	var deps modkit.Deps
	if opt.Deps != nil {
		deps = *opt.Deps
	} else {
		var pg store.TxRunner
		if opt.Store.HasPG() {
			pg = opt.Store.PG
		}
		deps = modkit.FromConfig(opt.Config, pg)
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// ports are registered as each module is built so later modules can look
	// them up by name; thaidate owns the calendar and schedules borrows it so
	// both agree on today
	build := func(m module.Module) module.Module {
		module.Register(m.Name(), m.Ports())
		return m
	}
	td := build(tdmod.New(deps))
	cal, ok := module.PortsAs[schedom.Calendar](td.Name())
	if !ok {
		panic("api: " + td.Name() + " module exposes no calendar")
	}

	mods := []module.Module{
		build(metamod.New(deps)),
		td,
		build(schedmod.New(deps, modkit.WithPorts(cal))),
	}

	var (
		docs  []swaggerkit.SpecMutator
		names []string
	)
	for _, m := range mods {
		names = append(names, m.Name())
		if d, ok := m.(swaggerkit.Documented); ok {
			docs = append(docs, d.Docs())
		}
	}
	swaggerkit.Mount(r, opt.EnableSwagger, docs...)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	deps.Log.Info().Strs("modules", names).Strs("ports", module.Names()).Bool("postgres", deps.PG != nil).Msg("api mounted")
	return mods
}
