package messaging

import (
	"fmt"
	"lunysse-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker. It returns (nil, nil) when RabbitMQ is disabled,
// in which case triage events are only logged.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) (*amqp091.Connection, error) {
	if !driverConfig.RabbitMQ.Enabled {
		log.Info("RabbitMQ disabled, triage events will only be logged")
		return nil, nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	log.Info("Successfully connected to rabbitMQ", zap.String("host", driverConfig.RabbitMQ.Host))
	return conn, nil
}
