package routers

import (
	"doctor-appointment-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHealthRoutes(router chi.Router, healthController *controllers.HealthController) {
	router.Get("/", healthController.Root)
	router.Get("/health", healthController.Liveness)
	router.Get("/health/ready", healthController.Readiness)
}
