package http

import (
	stdhttp "net/http"

	"clubhouse/internal/modkit/swaggerkit"
	"clubhouse/internal/services/api/schedules/domain"
)

var idParam = swaggerkit.Param{Name: "id", In: "path", Desc: "schedule uuid"}

// Docs describes the routes under prefix
func Docs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		swaggerkit.AddOperation(spec, stdhttp.MethodPost, prefix, swaggerkit.Operation{
			Summary: "Book a training session",
			Tag:     "Schedules",
			Body: domain.CreateInput{
				Title:           "ฝึกซ้อมทีม U12",
				Date:            "18/10/2569",
				Time:            "16:30",
				Location:        "สนามหญ้าเทียม 2",
				MaxParticipants: 20,
				Participants:    []domain.ParticipantInput{{Name: "ด.ช. สมชาย ใจดี"}},
			},
			Status: stdhttp.StatusCreated,
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodGet, prefix, swaggerkit.Operation{
			Summary: "List sessions, newest first",
			Tag:     "Schedules",
			Params: []swaggerkit.Param{
				{Name: "status", In: "query", Desc: "upcoming, completed or cancelled"},
				{Name: "limit", In: "query", Type: "integer", Desc: "1..200, default 50"},
			},
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodGet, prefix+"/{id}", swaggerkit.Operation{
			Summary: "Get a session",
			Tag:     "Schedules",
			Params:  []swaggerkit.Param{idParam},
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodPatch, prefix+"/{id}/status", swaggerkit.Operation{
			Summary: "Complete or cancel a session",
			Tag:     "Schedules",
			Params:  []swaggerkit.Param{idParam},
			Body:    domain.StatusInput{Status: "completed"},
		})
		swaggerkit.AddOperation(spec, stdhttp.MethodDelete, prefix+"/{id}", swaggerkit.Operation{
			Summary: "Delete a session",
			Tag:     "Schedules",
			Params:  []swaggerkit.Param{idParam},
			Status:  stdhttp.StatusNoContent,
		})
	}
}
