// Package domain holds DTOs for the Thai calendar http and service contracts
package domain

import (
	"clubhouse/internal/core/thaidate"
	pnet "clubhouse/internal/platform/net"
)

// FormatInput asks for an instant rendered in Thai
type FormatInput struct {
	At     string `json:"at" validate:"required,max=64" example:"2026-10-17T14:30:00+07:00"`
	Layout string `json:"layout,omitempty" validate:"omitempty,max=16" example:"full"`
}

// ValidationMessage implements bind.Messager
func (FormatInput) ValidationMessage(field, tag string, lang pnet.Lang) string {
	if field == "at" && tag == "required" && lang == pnet.LangThai {
		return "กรุณาระบุวันเวลา"
	}
	return ""
}

// FormatOutput is the rendered text
type FormatOutput struct {
	Layout string `json:"layout" example:"full"`
	Text   string `json:"text" example:"วันเสาร์ที่ 17 ตุลาคม 2569 บ่าย2:30 น."`
}

// ValidateInput is the full current text of a masked field
type ValidateInput struct {
	Text string `json:"text" validate:"max=64" example:"17102569"`
}

// ValidateOutput is the state the field should show
type ValidateOutput struct {
	Shape       string `json:"shape" example:"date"`
	DisplayText string `json:"display_text" example:"17/10/2569"`
	thaidate.Result
	Ready bool                `json:"ready"`
	Date  *thaidate.DateParts `json:"date,omitempty"`
	Time  *thaidate.TimeParts `json:"time,omitempty"`
}

// TodayOutput is now on the service clock in every layout
type TodayOutput struct {
	Now          thaidate.CivilInstant `json:"now"`
	BuddhistYear int                   `json:"buddhist_year" example:"2569"`
	Date         string                `json:"date" example:"วันเสาร์ที่ 17 ตุลาคม 2569"`
	Time         string                `json:"time" example:"บ่าย2:30 น."`
	Full         string                `json:"full"`
	Numeric      string                `json:"numeric" example:"17/10/2569 14:30:00"`
}
