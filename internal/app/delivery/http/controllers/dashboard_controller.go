package controllers

import (
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

var (
	dashboardControllerInstance *DashboardController
	onceDashboardController     sync.Once
)

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	onceDashboardController.Do(func() {
		dashboardControllerInstance = &DashboardController{
			Log:              logger,
			DashboardUsecase: dashboardUsecase,
		}
	})
	return dashboardControllerInstance
}

func (ctrl *DashboardController) GetSummary(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	response, err := ctrl.DashboardUsecase.GetSummary(r.Context(), session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccess, response)
}
