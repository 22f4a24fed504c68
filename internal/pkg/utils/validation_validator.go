package utils

import (
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("urgency", validateUrgency)
	validate.RegisterValidation("request_status", validateRequestStatus)
	validate.RegisterValidation("slot_day", validateSlotDay)
	validate.RegisterValidation("slot_time", validateSlotTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUrgency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.UrgencyHigh, constvars.UrgencyMedium, constvars.UrgencyLow:
		return true
	}
	return false
}

func validateRequestStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RequestStatusPending, constvars.RequestStatusAccepted, constvars.RequestStatusRejected:
		return true
	}
	return false
}

func validateSlotDay(fl validator.FieldLevel) bool {
	day := strings.TrimSpace(fl.Field().String())
	return day != "" && !strings.Contains(day, "-")
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return models.IsTemplateTime(fl.Field().String())
}
