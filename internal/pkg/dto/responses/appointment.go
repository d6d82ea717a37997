package responses

import "time"

type CreateAppointment struct {
	AppointmentID string `json:"appointment_id"`
}

type Appointment struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	DoctorSpecialty string    `json:"doctor_specialty"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
