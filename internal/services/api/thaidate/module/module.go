// Package module wires the Thai calendar helpers into the API using modkit
package module

import (
	"clubhouse/internal/core/thaidate"
	modkit "clubhouse/internal/modkit"
	"clubhouse/internal/modkit/httpkit"
	"clubhouse/internal/modkit/swaggerkit"
	"clubhouse/internal/services/api/thaidate/domain"
	tdhttp "clubhouse/internal/services/api/thaidate/http"
	tdsvc "clubhouse/internal/services/api/thaidate/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b     modkit.Built
	svc   *tdsvc.Svc
	ports domain.Ports
}

// New constructs a thaidate module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps = deps.WithDefaults()
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("thaidate"),
		modkit.WithPrefix("/thaidate"),
	}, opts...)...)

	s := tdsvc.New(deps.Clock, deps.Cfg.MayLocation("TIMEZONE", thaidate.Bangkok))
	return &Module{
		b:     b,
		svc:   s,
		ports: domain.Ports{Service: s, Calendar: s.Calendar()},
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { tdhttp.Register(rr, m.svc) })
}

// Ports returns domain.Ports
func (m *Module) Ports() any { return m.ports }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Docs implements swaggerkit.Documented
func (m *Module) Docs() swaggerkit.SpecMutator { return tdhttp.Docs(m.b.Prefix) }
