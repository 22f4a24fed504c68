package availability

import "lunysse-service/internal/app/models"

// Selector tracks which (day, time) slots are chosen. Ids follow
// models.SlotID. Toggle accepts any pair; validation belongs to the caller.
// A Selector is not safe for concurrent use.
type Selector struct {
	days      []string
	timeSlots []models.TimeSlot
	selected  []string
	index     map[string]struct{}
	open      bool
	onChange  func(selected []string)
}

// NewSelector starts from the given selection, dropping duplicates. onChange
// receives a copy of the selection after every Toggle; it may be nil.
func NewSelector(days []string, selected []string, onChange func(selected []string)) *Selector {
	s := &Selector{
		days:      append([]string(nil), days...),
		timeSlots: models.DefaultTimeSlots(),
		index:     make(map[string]struct{}, len(selected)),
		onChange:  onChange,
	}
	for _, id := range selected {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.selected = append(s.selected, id)
	}
	return s
}

// Toggle removes the slot when selected and adds it otherwise, then reports
// the new selection to the owner.
func (s *Selector) Toggle(day, time string) []string {
	id := models.SlotID(day, time)
	if _, ok := s.index[id]; ok {
		delete(s.index, id)
		for i, existing := range s.selected {
			if existing == id {
				s.selected = append(s.selected[:i], s.selected[i+1:]...)
				break
			}
		}
	} else {
		s.index[id] = struct{}{}
		s.selected = append(s.selected, id)
	}

	next := s.Selected()
	if s.onChange != nil {
		s.onChange(next)
	}
	return next
}

func (s *Selector) Contains(day, time string) bool {
	_, ok := s.index[models.SlotID(day, time)]
	return ok
}

// Selected returns the selection in insertion order.
func (s *Selector) Selected() []string {
	return append([]string{}, s.selected...)
}

func (s *Selector) Count() int {
	return len(s.selected)
}

func (s *Selector) CountForDay(day string) int {
	count := 0
	for _, id := range s.selected {
		if slotDay, _, ok := models.SplitSlotID(id); ok && slotDay == day {
			count++
		}
	}
	return count
}

func (s *Selector) Days() []string {
	return append([]string{}, s.days...)
}

func (s *Selector) TimeSlots() []models.TimeSlot {
	return append([]models.TimeSlot{}, s.timeSlots...)
}

// Open, Close and ToggleOpen drive the picker's expanded state. It carries no
// selection semantics.
func (s *Selector) Open()        { s.open = true }
func (s *Selector) Close()       { s.open = false }
func (s *Selector) ToggleOpen()  { s.open = !s.open }
func (s *Selector) IsOpen() bool { return s.open }
