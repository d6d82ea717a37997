package routers

import (
	"doctor-appointment-service/internal/app/delivery/http/controllers"
	"doctor-appointment-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, rateLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	if rateLimiter != nil {
		router.Use(rateLimiter.Limit)
	}
	router.Post("/signup", authController.Signup)
	router.Post("/signin", authController.Signin)
}
