package contracts

import (
	"context"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/dto/requests"
	"lunysse-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	ParseToken(ctx context.Context, token string) (*models.Session, error)
}

type TriageUsecase interface {
	ListPending(ctx context.Context, session models.Session) (*responses.PendingRequests, error)
	Accept(ctx context.Context, session models.Session, requestID string) error
	Reject(ctx context.Context, session models.Session, requestID string) error
}

type AvailabilityUsecase interface {
	GetSelection(ctx context.Context, session models.Session) (*responses.Availability, error)
	ToggleSlot(ctx context.Context, session models.Session, request *requests.ToggleAvailabilitySlot) (*responses.Availability, error)
	ReplaceSelection(ctx context.Context, session models.Session, request *requests.ReplaceAvailability) (*responses.Availability, error)
	GetTemplate(ctx context.Context) *responses.SlotTemplate
}

type PatientUsecase interface {
	ListPatients(ctx context.Context, session models.Session, request *requests.ListPatients) (*responses.Patients, error)
}

type DashboardUsecase interface {
	GetSummary(ctx context.Context, session models.Session) (*responses.DashboardSummary, error)
}

type ReportUsecase interface {
	ExportRoster(ctx context.Context, session models.Session) (*responses.ExportRosterReport, error)
}
