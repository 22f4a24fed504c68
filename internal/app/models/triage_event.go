package models

import "time"

type TriageEvent struct {
	Event          string    `json:"event"`
	RequestID      string    `json:"requestId"`
	PsychologistID string    `json:"psychologistId"`
	PatientID      string    `json:"patientId,omitempty"`
	PatientEmail   string    `json:"patientEmail"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurredAt"`
}
