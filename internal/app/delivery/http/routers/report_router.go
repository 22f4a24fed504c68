package routers

import (
	"lunysse-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, reportController *controllers.ReportController) {
	router.Post("/roster", reportController.ExportRoster)
}
