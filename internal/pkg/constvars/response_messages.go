package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth
	SignupSuccessMessage = "User registered successfully."
	SigninSuccessMessage = "Signed in successfully."

	// Appointments
	CreateAppointmentSuccessMessage     = "Appointment booked successfully."
	UpdateAppointmentSuccessMessage     = "Appointment updated successfully."
	CancelAppointmentSuccessMessage     = "Appointment cancelled successfully."
	GetAppointmentSuccessMessage        = "get appointment successfully"
	GetAppointmentsSuccessMessage       = "get appointments successfully"
	GetDoctorsSuccessMessage            = "get doctors successfully"
	GetDoctorAvailabilitySuccessMessage = "get doctor availability successfully"

	// Service
	WelcomeMessage     = "Welcome to the Doctor Appointment API"
	HealthyMessage     = "healthy"
	ReadyMessage       = "ready"
	NotReadyMessage    = "not ready"
	ServiceDisplayName = "doctor-appointment-service"
)
