package responses

import "lunysse-service/internal/app/models"

type PendingRequests struct {
	Requests   []PendingRequest `json:"requests"`
	Total      int              `json:"total"`
	Processing []string         `json:"processing"`
}

type PendingRequest struct {
	models.SessionRequest
	UrgencyLabel string `json:"urgencyLabel"`
	Processing   bool   `json:"processing"`
}
