package config

import (
	"lunysse-service/internal/pkg/constvars"
	"lunysse-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "lunysse"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			DataSource:                 utils.GetEnvString("APP_DATA_SOURCE", constvars.DataSourceMock),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			AllowedOrigins:             utils.GetEnvCSV("APP_ALLOWED_ORIGINS", []string{"*"}),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			Issuer:        utils.GetEnvString("JWT_ISSUER", "lunysse-service"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Mock: Mock{
			Latency:     utils.GetEnvDuration("MOCK_LATENCY", 300*time.Millisecond),
			FailureRate: utils.GetEnvFloat("MOCK_FAILURE_RATE", 0),
			Seed:        utils.GetEnvBool("MOCK_SEED", true),
		},
		Triage: Triage{
			RefreshCronSpec:    utils.GetEnvString("TRIAGE_REFRESH_CRON_SPEC", "@every 1m"),
			RefreshesPerSecond: utils.GetEnvInt("TRIAGE_REFRESHES_PER_SECOND", 20),
			AcceptLockTTL:      utils.GetEnvDuration("TRIAGE_ACCEPT_LOCK_TTL", 30*time.Second),
		},
		Availability: Availability{
			Days:    utils.GetEnvCSV("AVAILABILITY_DAYS", []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta"}),
			LockTTL: utils.GetEnvDuration("AVAILABILITY_LOCK_TTL", 5*time.Second),
		},
		Notification: Notification{
			DismissAfter: utils.GetEnvDuration("NOTIFICATION_DISMISS_AFTER", time.Second),
		},
		RabbitMQ: AppRabbitMQ{
			TriageEventQueue: utils.GetEnvString("APP_RABBITMQ_TRIAGE_EVENT_QUEUE", "lunysse.triage.events"),
		},
		Report: Report{
			BucketName:                  utils.GetEnvString("REPORT_BUCKET_NAME", "lunysse-reports"),
			PresignedURLExpiryInMinutes: utils.GetEnvInt("REPORT_PRESIGNED_URL_EXPIRY_IN_MINUTES", 60),
		},
	}
}
