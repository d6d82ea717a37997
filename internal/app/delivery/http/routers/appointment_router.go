package routers

import (
	"doctor-appointment-service/internal/app/delivery/http/controllers"
	"doctor-appointment-service/internal/app/delivery/http/middlewares"
	"doctor-appointment-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	doctorController *controllers.DoctorController,
) {
	router.Get("/doctors", doctorController.FindAll)
	router.Get(fmt.Sprintf("/doctors/{%s}/availability", constvars.URLParamDoctorID), appointmentController.FindDoctorAvailability)

	appointmentPath := fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID)
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/", appointmentController.FindAll)
		r.Post("/", appointmentController.CreateAppointment)
		r.Get(appointmentPath, appointmentController.FindByID)
		r.Put(appointmentPath, appointmentController.RescheduleAppointment)
		r.Delete(appointmentPath, appointmentController.CancelAppointment)
	})
}
