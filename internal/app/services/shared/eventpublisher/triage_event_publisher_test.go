package eventpublisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	exchange string
	key      string
	msgs     []amqp.Publishing
	err      error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.key = key
	f.msgs = append(f.msgs, msg)
	return nil
}

func TestRabbitMQPublisher_PublishesPersistentJSON(t *testing.T) {
	ch := &fakeChannel{}
	p := &rabbitMQPublisher{ch: ch, queue: "lunysse.triage.events", log: zap.NewNop()}

	event := models.TriageEvent{
		Event:          constvars.TriageEventAccepted,
		RequestID:      "req-1",
		PsychologistID: "psy-1",
		PatientEmail:   "ana@example.com",
		Status:         constvars.RequestStatusAccepted,
		OccurredAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishTriageEvent(context.Background(), event))

	require.Len(t, ch.msgs, 1)
	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "lunysse.triage.events", ch.key)

	msg := ch.msgs[0]
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, constvars.MIMEApplicationJSON, msg.ContentType)
	assert.Equal(t, constvars.TriageEventAccepted, msg.Type)

	var decoded models.TriageEvent
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, event.RequestID, decoded.RequestID)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestRabbitMQPublisher_WrapsPublishError(t *testing.T) {
	p := &rabbitMQPublisher{ch: &fakeChannel{err: errors.New("channel closed")}, queue: "q", log: zap.NewNop()}

	err := p.PublishTriageEvent(context.Background(), models.TriageEvent{Event: constvars.TriageEventRejected})
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
}

func TestLogPublisher_NeverFails(t *testing.T) {
	assert.NoError(t, NewLogPublisher(zap.NewNop()).PublishTriageEvent(context.Background(), models.TriageEvent{}))
}
