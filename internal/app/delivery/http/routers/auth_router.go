package routers

import (
	"lunysse-service/internal/app/delivery/http/controllers"
	"lunysse-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.LoginRateLimiter()).Post("/login", authController.Login)
}
