package middlewares

import (
	"context"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and stores the resulting
// models.Session under CONTEXT_SESSION_DATA_KEY.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		token := utils.ExtractBearerToken(r)
		if token == "" {
			utils.LogSecurityEvent(m.Log, "missing_bearer_token", requestID, "low",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.ParseToken(r.Context(), token)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "invalid_bearer_token", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, *session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
