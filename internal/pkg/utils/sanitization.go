package utils

import (
	"lunysse-service/internal/pkg/dto/requests"
	"strings"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = NormalizeEmail(input.Email)
}

func SanitizeToggleAvailabilitySlot(input *requests.ToggleAvailabilitySlot) {
	input.Day = strings.TrimSpace(input.Day)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeListPatientsRequest(input *requests.ListPatients) {
	input.Search = strings.TrimSpace(input.Search)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
}
