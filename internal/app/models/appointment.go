package models

import (
	"doctor-appointment-service/internal/pkg/dto/responses"
	"doctor-appointment-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) IsValid() bool {
	return s == AppointmentStatusBooked || s == AppointmentStatusCancelled
}

func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCancelled
}

// ValidateStatusTransition allows booked -> booked (reschedule) and booked -> cancelled.
// Cancelled is absorbing.
func ValidateStatusTransition(from, to AppointmentStatus) error {
	if !from.IsValid() || !to.IsValid() {
		return exceptions.ErrInvalidStatusTransition(nil, string(from), string(to))
	}
	if !from.IsTerminal() {
		return nil
	}
	if to == AppointmentStatusCancelled {
		return exceptions.ErrAppointmentAlreadyCancelled(nil)
	}
	return exceptions.ErrCannotUpdateCancelled(nil)
}

type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	DoctorID  primitive.ObjectID `bson:"doctor_id"`
	Date      string             `bson:"date"`
	TimeSlot  string             `bson:"time_slot"`
	Status    AppointmentStatus  `bson:"status"`
	TimeModel `bson:",inline"`
}

// AppointmentUpdate holds the fields a conditional update may set; nil fields are left untouched.
type AppointmentUpdate struct {
	Date      *string
	TimeSlot  *string
	Status    *AppointmentStatus
	UpdatedAt time.Time
}

// AppointmentDetail is an appointment joined with its doctor's presentation fields.
type AppointmentDetail struct {
	Appointment     `bson:",inline"`
	DoctorName      string `bson:"doctor_name"`
	DoctorSpecialty string `bson:"doctor_specialty"`
}

func (a *AppointmentDetail) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:              a.ID.Hex(),
		DoctorID:        a.DoctorID.Hex(),
		DoctorName:      a.DoctorName,
		DoctorSpecialty: a.DoctorSpecialty,
		Date:            a.Date,
		TimeSlot:        a.TimeSlot,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

type AppointmentEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	UserID        string    `json:"user_id"`
	DoctorID      string    `json:"doctor_id"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"time_slot"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewAppointmentEvent(eventID, eventType string, appointment *Appointment, occurredAt time.Time) AppointmentEvent {
	return AppointmentEvent{
		ID:            eventID,
		Type:          eventType,
		AppointmentID: appointment.ID.Hex(),
		UserID:        appointment.UserID,
		DoctorID:      appointment.DoctorID.Hex(),
		Date:          appointment.Date,
		TimeSlot:      appointment.TimeSlot,
		Status:        string(appointment.Status),
		OccurredAt:    occurredAt,
	}
}
