package httpkit

import (
	"net/http"

	str "clubhouse/internal/platform/strings"
)

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
// prefix is normalized to one leading slash and no trailing slash
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(str.MustPrefix(prefix), func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
