package controllers

import (
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/requests"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

var (
	availabilityControllerInstance *AvailabilityController
	onceAvailabilityController     sync.Once
)

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	onceAvailabilityController.Do(func() {
		availabilityControllerInstance = &AvailabilityController{
			Log:                 logger,
			AvailabilityUsecase: availabilityUsecase,
		}
	})
	return availabilityControllerInstance
}

func (ctrl *AvailabilityController) GetSelection(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	response, err := ctrl.AvailabilityUsecase.GetSelection(r.Context(), session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccess, response)
}

func (ctrl *AvailabilityController) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	request := new(requests.ToggleAvailabilitySlot)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeToggleAvailabilitySlot(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.AvailabilityUsecase.ToggleSlot(r.Context(), session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleAvailabilitySuccess, response)
}

func (ctrl *AvailabilityController) ReplaceSelection(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	request := new(requests.ReplaceAvailability)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	for i := range request.Slots {
		utils.SanitizeToggleAvailabilitySlot(&request.Slots[i])
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.AvailabilityUsecase.ReplaceSelection(r.Context(), session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReplaceAvailabilitySuccess, response)
}

func (ctrl *AvailabilityController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotTemplateSuccess, ctrl.AvailabilityUsecase.GetTemplate(r.Context()))
}
