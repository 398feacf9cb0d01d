// Package domain holds DTOs for schedules http and service contracts
package domain

import (
	"strings"
	"time"

	"clubhouse/internal/core/thaidate"
	"clubhouse/internal/core/training"
	pnet "clubhouse/internal/platform/net"

	"github.com/google/uuid"
)

// Field messages shown by the club app
const (
	MsgTitleRequired        = "กรุณาระบุชื่อการฝึกซ้อม"
	MsgDateRequired         = "กรุณาเลือกวันที่"
	MsgTimeRequired         = "กรุณาเลือกเวลา"
	MsgLocationRequired     = "กรุณาระบุสถานที่"
	MsgMaxRequired          = "กรุณาระบุจำนวนผู้เข้าร่วม"
	MsgParticipantsRequired = "กรุณาเพิ่มผู้เข้าร่วมอย่างน้อย 1 คน"
	MsgParticipantName      = "กรุณากรอกชื่อผู้เข้าร่วม"
	MsgTooManyParticipants  = "จำนวนผู้เข้าร่วมเกินจำนวนที่กำหนด"
	MsgStatusInvalid        = "สถานะไม่ถูกต้อง"
)

// ParticipantInput is one person booked on a session
type ParticipantInput struct {
	Name string `json:"name" validate:"notblank,max=100" example:"ด.ช. สมชาย ใจดี"`
}

// CreateInput is the body of POST /schedules
// Date and Time are the masked field texts, dd/mm/yyyy in Buddhist Era and hh:mm
type CreateInput struct {
	Title           string             `json:"title" validate:"notblank,max=200" example:"ฝึกซ้อมทีม U12"`
	Date            string             `json:"date" validate:"notblank,max=32" example:"18/10/2569"`
	Time            string             `json:"time" validate:"notblank,max=16" example:"16:30"`
	Location        string             `json:"location" validate:"notblank,max=200" example:"สนามหญ้าเทียม 2"`
	MaxParticipants int                `json:"max_participants" validate:"required,min=1,max=500" example:"20"`
	Participants    []ParticipantInput `json:"participants" validate:"required,min=1,max=500,dive"`
	Description     string             `json:"description,omitempty" validate:"max=2000"`
	Content         training.Content   `json:"content,omitempty" validate:"max=3"`
}

// ValidationMessage implements bind.Messager with the app's own wording
func (CreateInput) ValidationMessage(field, tag string, lang pnet.Lang) string {
	if lang != pnet.LangThai {
		return ""
	}
	switch field {
	case "title":
		if tag == "notblank" {
			return MsgTitleRequired
		}
	case "date":
		if tag == "notblank" {
			return MsgDateRequired
		}
	case "time":
		if tag == "notblank" {
			return MsgTimeRequired
		}
	case "location":
		if tag == "notblank" {
			return MsgLocationRequired
		}
	case "max_participants":
		if tag == "required" {
			return MsgMaxRequired
		}
	case "participants":
		if tag == "required" || tag == "min" {
			return MsgParticipantsRequired
		}
	}
	if tag == "notblank" && strings.HasPrefix(field, "participants[") {
		return MsgParticipantName
	}
	return ""
}

// ListInput filters GET /schedules
type ListInput struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=upcoming completed cancelled" example:"upcoming"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// StatusInput is the body of PATCH /schedules/{id}/status
type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=upcoming completed cancelled" example:"completed"`
}

// ValidationMessage implements bind.Messager
func (StatusInput) ValidationMessage(field, _ string, lang pnet.Lang) string {
	if field == "status" && lang == pnet.LangThai {
		return MsgStatusInvalid
	}
	return ""
}

// Participant is a booked person
type Participant struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Schedule is a training session as the api returns it
// The *_text fields are rendered in Thai against the service clock
type Schedule struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`

	At   thaidate.CivilInstant `json:"at"`
	Date string                `json:"date" example:"18/10/2569"`
	Time string                `json:"time" example:"16:30"`

	DateText string `json:"date_text" example:"วันอาทิตย์ที่ 18 ตุลาคม 2569"`
	TimeText string `json:"time_text" example:"บ่าย4:30 น."`
	WhenText string `json:"when_text"`

	Status        training.Status   `json:"status"`
	Timeline      training.Timeline `json:"timeline"`
	TimelineLabel string            `json:"timeline_label" example:"ใกล้ถึงเวลา"`

	MaxParticipants int              `json:"max_participants"`
	Participants    []Participant    `json:"participants"`
	Content         training.Content `json:"content"`
	TotalMinutes    int              `json:"total_minutes" example:"60"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
