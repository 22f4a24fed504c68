package contracts

import (
	"context"
	"lunysse-service/internal/app/models"
)

// SchedulingDataClient is the data source consumed by the triage and dashboard
// flows. Errors are opaque: callers treat every failure the same way.
type SchedulingDataClient interface {
	GetRequests(ctx context.Context, psychologistID string) ([]models.SessionRequest, error)
	GetPatients(ctx context.Context, psychologistID string) ([]models.Patient, error)
	CreatePatient(ctx context.Context, input models.CreatePatientInput) (*models.Patient, error)
	UpdateRequestStatus(ctx context.Context, requestID, status, note string) error
	GetAppointments(ctx context.Context, psychologistID string) ([]models.Appointment, error)
}

type PsychologistRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Psychologist, error)
}
