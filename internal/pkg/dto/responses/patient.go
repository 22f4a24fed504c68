package responses

import "lunysse-service/internal/app/models"

type Patients struct {
	Patients []models.Patient `json:"patients"`
	Total    int              `json:"total"`
}
