package utils

import (
	"doctor-appointment-service/internal/pkg/dto/requests"
	"strings"
)

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeSigninRequest(input *requests.Signin) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.TimeSlot = strings.TrimSpace(input.TimeSlot)
}

// A field that is blank after trimming counts as not provided.
func SanitizeRescheduleAppointmentRequest(input *requests.RescheduleAppointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.TimeSlot = strings.TrimSpace(input.TimeSlot)
}
