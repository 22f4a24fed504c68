package controllers

import (
	"context"
	"errors"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

func sessionFromRequest(log *zap.Logger, r *http.Request) (models.Session, bool) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(models.Session)
	if !ok || session.PsychologistID == "" {
		log.Error("Session data missing from context",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingErrorTypeKey, "authentication"),
		)
		return models.Session{}, false
	}
	return session, true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func missingSession(log *zap.Logger, w http.ResponseWriter) {
	utils.BuildErrorResponse(log, w, exceptions.ErrMissingSessionData(nil))
}
