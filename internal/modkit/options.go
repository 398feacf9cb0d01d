package modkit

import (
	"net/http"

	phttp "clubhouse/internal/platform/net/http"
)

// Option adjusts how a module is named, mounted and wired
type Option func(*buildCfg)

type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	subrouter func(phttp.Router) phttp.Router
	register  func(phttp.Router)
}

// WithName overrides the module name used in logs and the port registry
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix overrides the mount path below /api/v1, e.g. /schedules
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares appends module scoped middleware, applied in order after the common stack
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts hands a module something another module exposes, such as the
// thaidate Calendar schedules checks dates with. The receiving module type
// asserts Built.Ports to what it expects
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithSubrouter wraps the module router before any route is added
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(c *buildCfg) { c.subrouter = fn }
}

// WithRegister adds routes after the module's own; repeated calls all run, in order
func WithRegister(fn func(phttp.Router)) Option {
	return func(c *buildCfg) {
		prev := c.register
		if prev == nil {
			c.register = fn
			return
		}
		c.register = func(r phttp.Router) {
			prev(r)
			fn(r)
		}
	}
}
