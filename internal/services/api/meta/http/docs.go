package http

import (
	stdhttp "net/http"

	"clubhouse/internal/core/version"
	"clubhouse/internal/modkit/swaggerkit"
)

// Docs describes the routes under prefix
func Docs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		swaggerkit.AddOperation(spec, stdhttp.MethodGet, prefix+"/health", swaggerkit.Operation{
			Summary: "Health check",
			Tag:     "Meta",
			Example: HealthResponse{OK: true, Service: version.ServiceName},
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodGet, prefix+"/ready", swaggerkit.Operation{
			Summary: "Readiness probe with dependency checks, 503 when one fails",
			Tag:     "Meta",
			Example: ReadyResponse{Status: "ok", Storage: "postgres", Checks: []ReadyCheck{{Name: "pg", Status: "ok"}}},
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodGet, prefix+"/version", swaggerkit.Operation{
			Summary: "Build and version info",
			Tag:     "Meta",
			Example: version.Info(),
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodGet, prefix+"/service", swaggerkit.Operation{
			Summary: "Service info, uptime and today's Thai date",
			Tag:     "Meta",
		})
	}
}
