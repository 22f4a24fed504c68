package routers

import (
	"lunysse-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTriageRoutes(router chi.Router, triageController *controllers.TriageController) {
	router.Get("/pending", triageController.ListPending)
	router.Post("/{request_id}/accept", triageController.Accept)
	router.Post("/{request_id}/reject", triageController.Reject)
}
