package routers

import (
	"lunysse-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, availabilityController *controllers.AvailabilityController) {
	router.Get("/", availabilityController.GetSelection)
	router.Put("/", availabilityController.ReplaceSelection)
	router.Post("/toggle", availabilityController.ToggleSlot)
	router.Get("/template", availabilityController.GetTemplate)
}
