// Package http provides http transport for schedules
package http

import (
	stdhttp "net/http"
	"strconv"

	"clubhouse/internal/modkit/httpkit"
	perr "clubhouse/internal/platform/errors"
	"clubhouse/internal/services/api/schedules/domain"
	"clubhouse/internal/services/api/schedules/repo"
	svc "clubhouse/internal/services/api/schedules/service"
)

// Register mounts schedules endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PatchJSON(r, "/{id}/status", h.setStatus)
	httpkit.Delete(r, "/{id}", h.delete)
}

type handlers struct{ svc svc.Service }

func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// listInput reads ?status=&limit= and validates it like a body
func listInput(r *stdhttp.Request) (domain.ListInput, error) {
	q := r.URL.Query()
	in := domain.ListInput{Status: q.Get("status")}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return in, perr.WithField(perr.InvalidArgf("limit must be a positive number"), "limit")
		}
		in.Limit = n
	}
	return in, httpkit.Validate(r, in)
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in, err := listInput(r)
	if err != nil {
		return nil, err
	}
	items, total, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit == 0 {
		limit = repo.DefaultLimit
	}
	return httpkit.List(items, total, limit), nil
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

func (h *handlers) setStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.svc.SetStatus(r.Context(), httpkit.Param(r, "id"), in)
}

func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
