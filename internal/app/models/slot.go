package models

import "strings"

// TimeSlot is one entry of the fixed weekly time template.
type TimeSlot struct {
	Time   string `json:"time"`
	Period string `json:"period"`
}

// SlotID serializes a (day, time) pair as "<day>-<time>".
func SlotID(day, time string) string {
	return day + "-" + time
}

// SplitSlotID reverses SlotID. Day labels never contain '-', so the first
// separator splits the pair.
func SplitSlotID(slotID string) (day, time string, ok bool) {
	day, time, ok = strings.Cut(slotID, "-")
	if !ok || day == "" || time == "" {
		return "", "", false
	}
	return day, time, true
}

var defaultTimeSlots = []TimeSlot{
	{Time: "08:00", Period: "Manhã"},
	{Time: "09:00", Period: "Manhã"},
	{Time: "10:00", Period: "Manhã"},
	{Time: "11:00", Period: "Manhã"},
	{Time: "14:00", Period: "Tarde"},
	{Time: "15:00", Period: "Tarde"},
	{Time: "16:00", Period: "Tarde"},
	{Time: "17:00", Period: "Tarde"},
}

// DefaultTimeSlots returns a copy of the fixed 8-entry time template.
func DefaultTimeSlots() []TimeSlot {
	slots := make([]TimeSlot, len(defaultTimeSlots))
	copy(slots, defaultTimeSlots)
	return slots
}

func IsTemplateTime(time string) bool {
	for _, slot := range defaultTimeSlots {
		if slot.Time == time {
			return true
		}
	}
	return false
}
