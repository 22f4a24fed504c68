package models

import (
	"lunysse-service/internal/pkg/constvars"
	"time"
)

type Appointment struct {
	ID             string `bson:"_id" json:"id" validate:"required"`
	PatientID      string `bson:"patientId" json:"patientId" validate:"required"`
	PsychologistID string `bson:"psychologistId" json:"psychologistId" validate:"required"`
	Date           string `bson:"date" json:"date" validate:"required"`
	Time           string `bson:"time" json:"time" validate:"required"`
	Duration       int    `bson:"duration" json:"duration" validate:"gte=0"`
	Description    string `bson:"description,omitempty" json:"description,omitempty"`
	Notes          string `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string `bson:"status" json:"status" validate:"required"`
}

// StartsAt combines Date and Time in loc. Appointments with a malformed date
// report ok=false.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, bool) {
	layout := constvars.AppointmentDateLayout + " " + constvars.AppointmentTimeLayout
	start, err := time.ParseInLocation(layout, a.Date+" "+a.Time, loc)
	if err == nil {
		return start, true
	}
	day, err := time.ParseInLocation(constvars.AppointmentDateLayout, a.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
