// Package module holds the module contract and typed port lookups
package module

import (
	phttp "clubhouse/internal/platform/net/http"
)

// Module mounts routes under its prefix and may expose ports, e.g. the
// thaidate Calendar, for other modules to consume
type Module interface {
	MountRoutes(r phttp.Router)
	// Ports returns nil when the module exposes nothing
	Ports() any
	Name() string
}
