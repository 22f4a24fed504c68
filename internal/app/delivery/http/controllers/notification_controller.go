package controllers

import (
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NotificationController exposes the toasts that are still on screen for the
// authenticated psychologist.
type NotificationController struct {
	Log *zap.Logger
	Hub contracts.NotificationHub
}

var (
	notificationControllerInstance *NotificationController
	onceNotificationController     sync.Once
)

func NewNotificationController(logger *zap.Logger, hub contracts.NotificationHub) *NotificationController {
	onceNotificationController.Do(func() {
		notificationControllerInstance = &NotificationController{
			Log: logger,
			Hub: hub,
		}
	})
	return notificationControllerInstance
}

func (ctrl *NotificationController) ListActive(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	notifications := ctrl.Hub.For(session.PsychologistID).Active()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccess, notifications)
}

func (ctrl *NotificationController) Dismiss(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(ctrl.Log, r)
	if !ok {
		missingSession(ctrl.Log, w)
		return
	}

	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)
	if !ctrl.Hub.For(session.PsychologistID).Dismiss(notificationID) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotificationNotFound(nil, notificationID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DismissNotificationSuccess, nil)
}
