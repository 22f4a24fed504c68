package patients

import (
	"context"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/requests"
	"lunysse-service/internal/pkg/dto/responses"
	"lunysse-service/internal/pkg/exceptions"
	"strings"
)

type patientUsecase struct {
	DataClient contracts.SchedulingDataClient
}

func NewPatientUsecase(dataClient contracts.SchedulingDataClient) contracts.PatientUsecase {
	return &patientUsecase{DataClient: dataClient}
}

// ListPatients filters the roster by a case-insensitive name fragment and a
// status. An empty status or "todos" keeps every patient.
func (uc *patientUsecase) ListPatients(ctx context.Context, session models.Session, request *requests.ListPatients) (*responses.Patients, error) {
	patients, err := uc.DataClient.GetPatients(ctx, session.PsychologistID)
	if err != nil {
		return nil, exceptions.ErrDataClientFetch(err, "patients")
	}

	search := strings.ToLower(strings.TrimSpace(request.Search))
	status := strings.TrimSpace(request.Status)

	filtered := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if search != "" && !strings.Contains(strings.ToLower(patient.Name), search) {
			continue
		}
		if status != "" && status != constvars.PatientStatusFilterAll && !strings.EqualFold(patient.Status, status) {
			continue
		}
		filtered = append(filtered, patient)
	}

	return &responses.Patients{
		Patients: filtered,
		Total:    len(filtered),
	}, nil
}
