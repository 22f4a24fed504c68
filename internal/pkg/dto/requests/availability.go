package requests

type ToggleAvailabilitySlot struct {
	Day  string `json:"day" validate:"required,slot_day"`
	Time string `json:"time" validate:"required,slot_time"`
}

type ReplaceAvailability struct {
	Slots []ToggleAvailabilitySlot `json:"slots" validate:"dive"`
}
