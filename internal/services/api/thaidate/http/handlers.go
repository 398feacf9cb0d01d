// Package http provides http transport for the Thai calendar helpers
package http

import (
	stdhttp "net/http"

	"clubhouse/internal/modkit/httpkit"
	"clubhouse/internal/modkit/swaggerkit"
	"clubhouse/internal/services/api/thaidate/domain"
	svc "clubhouse/internal/services/api/thaidate/service"
)

// Register mounts thaidate endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/format", h.format)
	httpkit.PostJSON(r, "/validate/{shape}", h.validate)
	httpkit.Get(r, "/today", h.today)
}

type handlers struct{ svc svc.Service }

func (h *handlers) format(r *stdhttp.Request, in domain.FormatInput) (any, error) {
	return h.svc.Format(r.Context(), in)
}

func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	return h.svc.Validate(r.Context(), httpkit.Param(r, "shape"), in)
}

func (h *handlers) today(r *stdhttp.Request) (any, error) {
	return h.svc.Today(r.Context())
}

// Docs describes the routes under prefix
func Docs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		swaggerkit.AddOperation(spec, stdhttp.MethodPost, prefix+"/format", swaggerkit.Operation{
			Summary: "Render an instant in Thai",
			Tag:     "ThaiDate",
			Body:    domain.FormatInput{At: "2026-10-17T14:30:00+07:00", Layout: "full"},
			Example: domain.FormatOutput{Layout: "full", Text: "วันเสาร์ที่ 17 ตุลาคม 2569 บ่าย2:30 น."},
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodPost, prefix+"/validate/{shape}", swaggerkit.Operation{
			Summary: "Check the current text of a masked date or time field",
			Tag:     "ThaiDate",
			Params:  []swaggerkit.Param{{Name: "shape", In: "path", Desc: "date or time"}},
			Body:    domain.ValidateInput{Text: "17102569"},
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodGet, prefix+"/today", swaggerkit.Operation{
			Summary: "Today on the service clock in every layout",
			Tag:     "ThaiDate",
		})
	}
}
