// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"clubhouse/internal/core/version"
	modkit "clubhouse/internal/modkit"
	"clubhouse/internal/modkit/httpkit"
	"clubhouse/internal/modkit/swaggerkit"
	str "clubhouse/internal/platform/strings"

	metahttp "clubhouse/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	deps      modkit.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)
	return &Module{b: b, deps: deps.WithDefaults(), startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	d := metahttp.Deps{
		ServiceName: version.ServiceName,
		StartedAt:   m.startedAt,
		Clock:       m.deps.Clock,
		PG:          m.deps.PG,
	}
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, d) })
}

// Ports has nothing to share
func (m *Module) Ports() any { return nil }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Docs implements swaggerkit.Documented
func (m *Module) Docs() swaggerkit.SpecMutator { return metahttp.Docs(str.MustPrefix(m.b.Prefix)) }
