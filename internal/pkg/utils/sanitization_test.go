package utils

import (
	"lunysse-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Login{
			Email:    "  PSICOLOGO@LUNYSSE.COM  ",
			Password: "secret123",
		}

		SanitizeLoginRequest(request)

		assert.Equal(t, "psicologo@lunysse.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "secret123", request.Password, "password must not be touched")
	})
}

func TestSanitizeToggleAvailabilitySlot(t *testing.T) {
	request := &requests.ToggleAvailabilitySlot{Day: "  Segunda ", Time: " 08:00 "}

	SanitizeToggleAvailabilitySlot(request)

	assert.Equal(t, "Segunda", request.Day)
	assert.Equal(t, "08:00", request.Time)
}

func TestSanitizeListPatientsRequest(t *testing.T) {
	request := &requests.ListPatients{Search: "  joão ", Status: " ATIVO "}

	SanitizeListPatientsRequest(request)

	assert.Equal(t, "joão", request.Search)
	assert.Equal(t, "ativo", request.Status)
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Slot", func(t *testing.T) {
		err := ValidateStruct(&requests.ToggleAvailabilitySlot{Day: "Segunda", Time: "14:00"})
		assert.NoError(t, err)
	})

	t.Run("Time Outside Template", func(t *testing.T) {
		err := ValidateStruct(&requests.ToggleAvailabilitySlot{Day: "Segunda", Time: "12:00"})
		assert.Error(t, err)
	})

	t.Run("Day With Separator", func(t *testing.T) {
		err := ValidateStruct(&requests.ToggleAvailabilitySlot{Day: "Seg-unda", Time: "08:00"})
		assert.Error(t, err)
	})

	t.Run("Invalid Login Email", func(t *testing.T) {
		err := ValidateStruct(&requests.Login{Email: "not-an-email", Password: "secret123"})
		assert.Error(t, err)
	})
}
