// Package http provides meta endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"clubhouse/internal/core/thaidate"
	"clubhouse/internal/core/version"
	"clubhouse/internal/modkit/httpkit"
	"clubhouse/internal/modkit/repokit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(context.Context) error
}

// Deps are the handler dependencies; a nil PG means the memory store is in use
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	Clock       thaidate.Clock

	// Now is swapped in tests
	Now func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Clock == nil {
		d.Clock = thaidate.SystemClock{}
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"clubhouse-api"`
	Started string `json:"started"  example:"2026-10-17T07:00:00Z"`
	Now     string `json:"now"      example:"2026-10-17T07:30:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status  string       `json:"status"  example:"ok"` // ok fail
	Storage string       `json:"storage" example:"postgres"`
	Checks  []ReadyCheck `json:"checks"`
	Now     string       `json:"now"     example:"2026-10-17T07:30:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"clubhouse-api"`
	Started string `json:"started" example:"2026-10-17T07:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
	Today   string `json:"today"   example:"วันเสาร์ที่ 17 ตุลาคม 2569"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ready answers 503 when a configured dependency does not ping
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), repokit.DefaultPingTimeout)
	defer cancel()

	pg := ReadyCheck{Name: "pg", Status: "skipped"}
	storage := "memory"
	if h.deps.PG != nil {
		storage = "postgres"
		if p, ok := h.deps.PG.(Pinger); ok {
			pg.Status = "ok"
			if err := repokit.Ping(ctx, "pg", p); err != nil {
				pg.Status, pg.Error = "fail", err.Error()
			}
		} else {
			pg.Status = "unknown"
		}
	}

	out := ReadyResponse{
		Status:  "ok",
		Storage: storage,
		Checks:  []ReadyCheck{pg},
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}
	if pg.Status == "fail" {
		out.Status = "fail"
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
		Today:   thaidate.Format(h.deps.Clock.Now(), thaidate.LayoutDate),
	}, nil
}
