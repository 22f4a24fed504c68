package controllers

import (
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/dto/requests"
	"lunysse-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		patientControllerInstance = &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
	})
	return patientControllerInstance
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	request := &requests.ListPatients{
		Search: r.URL.Query().Get(constvars.URLQueryParamSearch),
		Status: r.URL.Query().Get(constvars.URLQueryParamStatus),
	}
	utils.SanitizeListPatientsRequest(request)

	response, err := ctrl.PatientUsecase.ListPatients(r.Context(), session, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccess, response)
}
