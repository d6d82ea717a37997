package contracts

import (
	"context"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/dto/requests"
	"doctor-appointment-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.CreateAppointment, error)
	RescheduleAppointment(ctx context.Context, request *requests.RescheduleAppointment) error
	CancelAppointment(ctx context.Context, request *requests.AppointmentByID) error
	FindAppointmentByID(ctx context.Context, request *requests.AppointmentByID) (*responses.Appointment, error)
	ListForUser(ctx context.Context, principalID string) ([]responses.Appointment, error)
	FindDoctorAvailability(ctx context.Context, request *requests.DoctorAvailability) (*responses.DoctorAvailability, error)
}

// AvailabilityChecker answers whether a (doctor, date, slot) triple can be claimed.
// Its answer is advisory; the appointments unique index is the final arbiter.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, doctorID, date, timeSlot, excludeAppointmentID string) (bool, error)
	FreeSlots(ctx context.Context, doctor *models.Doctor, date string) ([]string, error)
}

type AppointmentRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByIDAndUser(ctx context.Context, appointmentID, userID string) (*models.Appointment, error)
	FindDetailByIDAndUser(ctx context.Context, appointmentID, userID string) (*models.AppointmentDetail, error)
	ListDetailsByUser(ctx context.Context, userID string) ([]models.AppointmentDetail, error)
	ExistsBooked(ctx context.Context, doctorID, date, timeSlot, excludeAppointmentID string) (bool, error)
	FindBookedSlots(ctx context.Context, doctorID, date string) ([]string, error)
	UpdateIfStatus(ctx context.Context, appointmentID, userID string, expected models.AppointmentStatus, update models.AppointmentUpdate) (bool, error)
}

type AppointmentEventPublisher interface {
	Publish(ctx context.Context, event models.AppointmentEvent) error
	Close() error
}
