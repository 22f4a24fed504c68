package config

import "time"

type InternalConfig struct {
	App          App
	JWT          JWT
	Mock         Mock
	Triage       Triage
	Availability Availability
	Notification Notification
	RabbitMQ     AppRabbitMQ
	Report       Report
}

type App struct {
	Env            string
	Port           string
	Version        string
	Address        string
	Timezone       string
	EndpointPrefix string
	// DataSource selects the scheduling data client: "mock" or "mongo".
	DataSource                 string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
	AllowedOrigins             []string
}

type JWT struct {
	Secret        string
	Issuer        string
	ExpTimeInHour int
}

// Mock tunes the in-memory data client used when DataSource is "mock".
type Mock struct {
	Latency     time.Duration
	FailureRate float64
	Seed        bool
}

type Triage struct {
	// RefreshCronSpec is the cron expression for re-fetching pending requests.
	RefreshCronSpec    string
	RefreshesPerSecond int
	AcceptLockTTL      time.Duration
}

type Availability struct {
	Days    []string
	LockTTL time.Duration
}

type Notification struct {
	DismissAfter time.Duration
}

type AppRabbitMQ struct {
	TriageEventQueue string
}

type Report struct {
	BucketName                  string
	PresignedURLExpiryInMinutes int
}
