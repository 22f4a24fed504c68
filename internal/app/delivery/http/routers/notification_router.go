package routers

import (
	"lunysse-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, notificationController *controllers.NotificationController) {
	router.Get("/", notificationController.ListActive)
	router.Delete("/{notification_id}", notificationController.Dismiss)
}
