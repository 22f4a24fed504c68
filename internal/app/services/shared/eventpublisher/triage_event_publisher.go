package eventpublisher

import (
	"context"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/models"
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/exceptions"
	"lunysse-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitMQPublisher struct {
	ch    channel
	queue string
	log   *zap.Logger
	mu    sync.Mutex
}

// NewRabbitMQPublisher opens a channel and declares the durable triage queue.
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (contracts.TriageEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{ch: ch, queue: queueName, log: log}, nil
}

func (p *rabbitMQPublisher) PublishTriageEvent(ctx context.Context, event models.TriageEvent) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    utils.GenerateID(),
		Timestamp:    event.OccurredAt,
		Type:         event.Event,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	p.log.Debug("Triage event published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queue),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingSessionRequestKey, event.RequestID),
	)
	return nil
}

type logPublisher struct {
	log *zap.Logger
}

// NewLogPublisher records triage events in the log only. It is used when no
// broker is configured.
func NewLogPublisher(log *zap.Logger) contracts.TriageEventPublisher {
	return &logPublisher{log: log}
}

func (p *logPublisher) PublishTriageEvent(ctx context.Context, event models.TriageEvent) error {
	utils.LogBusinessEvent(p.log, event.Event, utils.GetRequestID(ctx),
		zap.String(constvars.LoggingSessionRequestKey, event.RequestID),
		zap.String(constvars.LoggingPsychologistIDKey, event.PsychologistID),
		zap.String("status", event.Status),
	)
	return nil
}
