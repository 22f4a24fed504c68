package utils

import (
	"context"
	"errors"
	"testing"

	"lunysse-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogOperation(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-42")

	t.Run("success", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		called := false

		err := LogOperation(ctx, zap.New(core), "reports.upload_roster", func(context.Context) error {
			called = true
			return nil
		}, zap.String(constvars.LoggingBucketKey, "lunysse-reports"))

		require.NoError(t, err)
		assert.True(t, called)
		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		fields := entry.ContextMap()
		assert.Equal(t, "req-42", fields[constvars.LoggingRequestIDKey])
		assert.Equal(t, "reports.upload_roster", fields[constvars.LoggingOperationKey])
		assert.Equal(t, "lunysse-reports", fields[constvars.LoggingBucketKey])
		assert.Equal(t, true, fields[constvars.LoggingSuccessKey])
		assert.Contains(t, fields, constvars.LoggingDurationKey)
	})

	t.Run("failure", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		boom := errors.New("bucket gone")

		err := LogOperation(ctx, zap.New(core), "reports.presign_roster", func(context.Context) error { return boom })

		assert.ErrorIs(t, err, boom)
		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
		assert.Equal(t, false, entry.ContextMap()[constvars.LoggingSuccessKey])
		assert.Equal(t, "bucket gone", entry.ContextMap()["error"])
	})
}
