package models

import (
	"lunysse-service/internal/pkg/constvars"
	"time"
)

// SessionRequest is a patient's ask for psychological attendance.
type SessionRequest struct {
	ID             string    `bson:"_id" json:"id" validate:"required"`
	PsychologistID string    `bson:"psychologistId" json:"psychologistId" validate:"required"`
	PatientName    string    `bson:"patientName" json:"patientName" validate:"required"`
	PatientEmail   string    `bson:"patientEmail" json:"patientEmail" validate:"required,email"`
	PatientPhone   string    `bson:"patientPhone" json:"patientPhone"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Urgency        string    `bson:"urgency" json:"urgency" validate:"required,urgency"`
	Status         string    `bson:"status" json:"status" validate:"required,request_status"`
	Note           string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (r SessionRequest) IsPending() bool {
	return r.Status == constvars.RequestStatusPending
}

// UrgencyLabel mirrors the badge shown on the triage card.
func (r SessionRequest) UrgencyLabel() string {
	switch r.Urgency {
	case constvars.UrgencyHigh:
		return "Alta urgência"
	case constvars.UrgencyMedium:
		return "Média urgência"
	default:
		return "Baixa urgência"
	}
}
