package routers

import (
	"fmt"
	"lunysse-service/internal/app/config"
	"lunysse-service/internal/app/delivery/http/controllers"
	"lunysse-service/internal/app/delivery/http/middlewares"
	"lunysse-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	triageController *controllers.TriageController,
	availabilityController *controllers.AvailabilityController,
	patientController *controllers.PatientController,
	dashboardController *controllers.DashboardController,
	reportController *controllers.ReportController,
	notificationController *controllers.NotificationController,
) {
	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Compress)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestTimeout)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/requests", func(r chi.Router) {
					attachTriageRoutes(r, triageController)
				})

				r.Route("/availability", func(r chi.Router) {
					attachAvailabilityRoutes(r, availabilityController)
				})

				r.Route("/patients", func(r chi.Router) {
					attachPatientRoutes(r, patientController)
				})

				r.Route("/dashboard", func(r chi.Router) {
					attachDashboardRoutes(r, dashboardController)
				})

				r.Route("/reports", func(r chi.Router) {
					attachReportRoutes(r, reportController)
				})

				r.Route("/notifications", func(r chi.Router) {
					attachNotificationRoutes(r, notificationController)
				})
			})
		})
	})
}
