package main

import (
	"context"
	"errors"
	"lunysse-service/internal/app/config"
	"lunysse-service/internal/app/contracts"
	"lunysse-service/internal/app/delivery/http/controllers"
	"lunysse-service/internal/app/delivery/http/middlewares"
	"lunysse-service/internal/app/delivery/http/routers"
	"lunysse-service/internal/app/drivers/database"
	"lunysse-service/internal/app/drivers/logger"
	"lunysse-service/internal/app/drivers/messaging"
	"lunysse-service/internal/app/drivers/storage"
	"lunysse-service/internal/app/services/core/auth"
	"lunysse-service/internal/app/services/core/availability"
	"lunysse-service/internal/app/services/core/dashboard"
	"lunysse-service/internal/app/services/core/patients"
	"lunysse-service/internal/app/services/core/reports"
	"lunysse-service/internal/app/services/core/scheduling"
	"lunysse-service/internal/app/services/core/triage"
	"lunysse-service/internal/app/services/shared/eventpublisher"
	"lunysse-service/internal/app/services/shared/jwtmanager"
	"lunysse-service/internal/app/services/shared/locker"
	"lunysse-service/internal/app/services/shared/mockapi"
	"lunysse-service/internal/app/services/shared/notifier"
	"lunysse-service/internal/app/services/shared/redis"
	minioStorage "lunysse-service/internal/app/services/shared/storage"
	"lunysse-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	ctx := context.Background()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrap.Redis, err = database.NewRedisClient(ctx, driverConfig, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	if internalConfig.App.DataSource == constvars.DataSourceMongo {
		bootstrap.MongoDB, err = database.NewMongoDB(ctx, driverConfig, log)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
	}

	bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig, log)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
	}

	bootstrap.Minio, err = storage.NewMinio(ctx, driverConfig, internalConfig.Report.BucketName, log)
	if err != nil {
		log.Fatal("Failed to connect to MinIO", zap.Error(err))
	}

	if err := bootstrapingTheApp(ctx, bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started",
			zap.String("address", internalConfig.App.Address),
			zap.String("port", internalConfig.App.Port),
			zap.String("data_source", internalConfig.App.DataSource),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

// schedulingBackend is what a data source provides: the scheduling data
// client plus the psychologist accounts used by login.
type schedulingBackend interface {
	contracts.SchedulingDataClient
	contracts.PsychologistRepository
}

func newSchedulingBackend(ctx context.Context, bootstrap *config.Bootstrap) (schedulingBackend, error) {
	if bootstrap.InternalConfig.App.DataSource == constvars.DataSourceMongo {
		client := scheduling.NewMongoDataClient(bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName), bootstrap.Logger)
		if err := client.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return client, nil
	}

	mockConfig := bootstrap.InternalConfig.Mock
	client := mockapi.NewClient(bootstrap.Logger,
		mockapi.WithLatency(mockConfig.Latency),
		mockapi.WithFailureRate(mockConfig.FailureRate, time.Now().UnixNano()),
	)
	if mockConfig.Seed {
		if err := client.Seed(time.Now()); err != nil {
			return nil, err
		}
	}
	return client, nil
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Data source
	backend, err := newSchedulingBackend(ctx, bootstrap)
	if err != nil {
		return err
	}

	// Redis and locks
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)

	// Notifications
	hub := notifier.NewHub(log, internalConfig.Notification.DismissAfter)
	bootstrap.NotifierStop = hub.Close

	// Triage events
	var publisher contracts.TriageEventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err = eventpublisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.TriageEventQueue, log)
		if err != nil {
			return err
		}
	} else {
		publisher = eventpublisher.NewLogPublisher(log)
	}

	// Object storage
	var reportStorage contracts.Storage
	if bootstrap.Minio != nil {
		reportStorage = minioStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Auth
	jwtManager, err := jwtmanager.NewJWTManager(internalConfig, log)
	if err != nil {
		return err
	}
	authUsecase := auth.NewAuthUsecase(backend, jwtManager, log)
	authController := controllers.NewAuthController(log, authUsecase)

	// Triage
	registry := triage.NewRegistry(backend, hub, log,
		triage.WithLocker(lockerService, internalConfig.Triage.AcceptLockTTL),
		triage.WithPublisher(publisher),
	)
	triageUsecase := triage.NewTriageUsecase(registry)
	triageController := controllers.NewTriageController(log, triageUsecase)

	worker := triage.NewWorker(log, registry, internalConfig.Triage.RefreshCronSpec, internalConfig.Triage.RefreshesPerSecond)
	worker.Start(ctx)
	bootstrap.WorkerStop = worker.Stop

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(redisRepository, lockerService, internalConfig, log)
	availabilityController := controllers.NewAvailabilityController(log, availabilityUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(backend)
	patientController := controllers.NewPatientController(log, patientUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(backend, internalConfig)
	dashboardController := controllers.NewDashboardController(log, dashboardUsecase)

	// Reports
	reportUsecase := reports.NewReportUsecase(backend, reportStorage, internalConfig, log)
	reportController := controllers.NewReportController(log, reportUsecase)

	// Notifications
	notificationController := controllers.NewNotificationController(log, hub)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, authUsecase, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		authController,
		triageController,
		availabilityController,
		patientController,
		dashboardController,
		reportController,
		notificationController,
	)
	return nil
}
