package models

import "time"

type Patient struct {
	ID             string    `bson:"_id" json:"id" validate:"required"`
	PsychologistID string    `bson:"psychologistId" json:"psychologistId" validate:"required"`
	Name           string    `bson:"name" json:"name" validate:"required"`
	Email          string    `bson:"email" json:"email" validate:"required,email"`
	Phone          string    `bson:"phone" json:"phone"`
	BirthDate      string    `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	Age            int       `bson:"age" json:"age" validate:"gte=0"`
	Status         string    `bson:"status" json:"status" validate:"required"`
	TotalSessions  int       `bson:"totalSessions" json:"totalSessions" validate:"gte=0"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// CreatePatientInput carries the contact fields copied from an accepted
// session request plus the roster defaults.
type CreatePatientInput struct {
	PsychologistID string `json:"psychologistId" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birthDate"`
	Age            int    `json:"age" validate:"gte=0"`
	Status         string `json:"status" validate:"required"`
}
