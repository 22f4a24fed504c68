package controllers

import (
	"context"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TriageController struct {
	Log           *zap.Logger
	TriageUsecase contracts.TriageUsecase
}

var (
	triageControllerInstance *TriageController
	onceTriageController     sync.Once
)

func NewTriageController(logger *zap.Logger, triageUsecase contracts.TriageUsecase) *TriageController {
	onceTriageController.Do(func() {
		triageControllerInstance = &TriageController{
			Log:           logger,
			TriageUsecase: triageUsecase,
		}
	})
	return triageControllerInstance
}

func (ctrl *TriageController) ListPending(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	response, err := ctrl.TriageUsecase.ListPending(r.Context(), session)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPendingRequestsSuccess, response)
}

func (ctrl *TriageController) Accept(w http.ResponseWriter, r *http.Request) {
	ctrl.resolve(w, r, "accept", ctrl.TriageUsecase.Accept, constvars.AcceptRequestSuccess)
}

func (ctrl *TriageController) Reject(w http.ResponseWriter, r *http.Request) {
	ctrl.resolve(w, r, "reject", ctrl.TriageUsecase.Reject, constvars.RejectRequestSuccess)
}

func (ctrl *TriageController) resolve(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	action func(ctx context.Context, session models.Session, requestID string) error,
	successMessage string,
) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	sessionRequestID := strings.TrimSpace(chi.URLParam(r, constvars.URLParamRequestID))
	if sessionRequestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamRequestID))
		return
	}

	ctrl.Log.Debug("Session request resolution started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.String(constvars.LoggingSessionRequestKey, sessionRequestID),
		zap.String(constvars.LoggingPsychologistIDKey, session.PsychologistID),
	)

	if err := action(r.Context(), session, sessionRequestID); err != nil {
		ctrl.Log.Error("Session request resolution failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, operation),
			zap.String(constvars.LoggingSessionRequestKey, sessionRequestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, nil)
}
