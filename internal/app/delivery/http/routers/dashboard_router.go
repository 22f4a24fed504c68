package routers

import (
	"lunysse-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, dashboardController *controllers.DashboardController) {
	router.Get("/", dashboardController.GetSummary)
}
