package responses

import "lunysse-service/internal/app/models"

type Availability struct {
	Days          []string       `json:"days"`
	SelectedSlots []string       `json:"selectedSlots"`
	SelectedCount int            `json:"selectedCount"`
	CountPerDay   map[string]int `json:"countPerDay"`
}

type SlotTemplate struct {
	Days      []string          `json:"days"`
	TimeSlots []models.TimeSlot `json:"timeSlots"`
}
