package utils

import (
	"context"
	"time"

	"lunysse-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogOperation runs fn and logs how long it took. Failures are logged at
// error level with the error, successes at info. fn's error is returned as is.
func LogOperation(ctx context.Context, logger *zap.Logger, operation string, fn func(context.Context) error, fields ...zap.Field) error {
	base := append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
	}, fields...)

	start := time.Now()
	err := fn(ctx)
	base = append(base, zap.Duration(constvars.LoggingDurationKey, time.Since(start)))

	if err != nil {
		logger.Error("Operation failed", append(base, zap.Bool(constvars.LoggingSuccessKey, false), zap.Error(err))...)
		return err
	}
	logger.Info("Operation completed", append(base, zap.Bool(constvars.LoggingSuccessKey, true))...)
	return nil
}

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("business_event", event),
		zap.Time("timestamp", time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Info("Business event occurred", allFields...)
}

func LogSecurityEvent(logger *zap.Logger, event string, requestID string, severity string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("security_event", event),
		zap.String("severity", severity),
		zap.Time("timestamp", time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Warn("Security event detected", allFields...)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
