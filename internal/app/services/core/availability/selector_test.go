package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekdays = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta"}

func TestSelector_ToggleAddsThenRemoves(t *testing.T) {
	var reported [][]string
	s := NewSelector(weekdays, nil, func(selected []string) { reported = append(reported, selected) })

	assert.Equal(t, []string{"Segunda-08:00"}, s.Toggle("Segunda", "08:00"))
	assert.True(t, s.Contains("Segunda", "08:00"))

	assert.Empty(t, s.Toggle("Segunda", "08:00"))
	assert.False(t, s.Contains("Segunda", "08:00"))

	require.Len(t, reported, 2)
	assert.Equal(t, []string{"Segunda-08:00"}, reported[0])
	assert.Empty(t, reported[1])
}

func TestSelector_ToggleTwiceRestoresSelection(t *testing.T) {
	initial := []string{"Segunda-08:00", "Quarta-14:00", "Sexta-17:00"}
	pairs := [][2]string{{"Segunda", "08:00"}, {"Terça", "10:00"}, {"Sexta", "17:00"}, {"Domingo", "03:00"}}

	for _, pair := range pairs {
		s := NewSelector(weekdays, initial, nil)
		s.Toggle(pair[0], pair[1])
		s.Toggle(pair[0], pair[1])
		assert.ElementsMatch(t, initial, s.Selected(), "toggling %v twice", pair)
	}
}

func TestSelector_KeepsInsertionOrderAndDropsDuplicates(t *testing.T) {
	s := NewSelector(weekdays, []string{"Quarta-09:00", "Quarta-09:00", "Segunda-08:00"}, nil)
	assert.Equal(t, []string{"Quarta-09:00", "Segunda-08:00"}, s.Selected())

	s.Toggle("Terça", "15:00")
	assert.Equal(t, []string{"Quarta-09:00", "Segunda-08:00", "Terça-15:00"}, s.Selected())
	assert.Equal(t, 3, s.Count())
}

func TestSelector_CountForDay(t *testing.T) {
	s := NewSelector(weekdays, nil, nil)
	s.Toggle("Segunda", "08:00")
	s.Toggle("Segunda", "09:00")
	s.Toggle("Terça", "14:00")

	assert.Equal(t, 2, s.CountForDay("Segunda"))
	assert.Equal(t, 1, s.CountForDay("Terça"))
	assert.Equal(t, 0, s.CountForDay("Quarta"))
}

func TestSelector_AcceptsUnknownPairs(t *testing.T) {
	s := NewSelector(weekdays, nil, nil)
	s.Toggle("Sábado", "07:30")
	assert.Equal(t, []string{"Sábado-07:30"}, s.Selected())
}

func TestSelector_SelectedIsACopy(t *testing.T) {
	s := NewSelector(weekdays, []string{"Segunda-08:00"}, nil)
	selected := s.Selected()
	selected[0] = "mutated"
	assert.Equal(t, []string{"Segunda-08:00"}, s.Selected())
}

func TestSelector_OpenFlagIsIndependent(t *testing.T) {
	s := NewSelector(weekdays, []string{"Segunda-08:00"}, nil)
	assert.False(t, s.IsOpen())

	s.Open()
	assert.True(t, s.IsOpen())
	s.ToggleOpen()
	assert.False(t, s.IsOpen())
	s.ToggleOpen()
	s.Close()
	assert.False(t, s.IsOpen())

	assert.Equal(t, []string{"Segunda-08:00"}, s.Selected())
}

func TestSelector_Template(t *testing.T) {
	s := NewSelector(weekdays, nil, nil)
	slots := s.TimeSlots()
	require.Len(t, slots, 8)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "Manhã", slots[0].Period)
	assert.Equal(t, "17:00", slots[7].Time)
	assert.Equal(t, "Tarde", slots[7].Period)
	assert.Equal(t, weekdays, s.Days())
}
