package controllers

import (
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase contracts.ReportUsecase
}

var (
	reportControllerInstance *ReportController
	onceReportController     sync.Once
)

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase) *ReportController {
	onceReportController.Do(func() {
		reportControllerInstance = &ReportController{
			Log:           logger,
			ReportUsecase: reportUsecase,
		}
	})
	return reportControllerInstance
}

func (ctrl *ReportController) ExportRoster(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	response, err := ctrl.ReportUsecase.ExportRoster(r.Context(), session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportRosterReportSuccess, response)
}
