package requests

// Date and slot formats are checked by the ledger, in a fixed order, so only presence is validated here.
type CreateAppointment struct {
	DoctorID    string `json:"doctor_id" validate:"required"`
	Date        string `json:"date" validate:"required"`
	TimeSlot    string `json:"time_slot" validate:"required"`
	PrincipalID string `json:"-"`
}

// Empty fields are treated as not provided.
type RescheduleAppointment struct {
	Date          string `json:"date,omitempty"`
	TimeSlot      string `json:"time_slot,omitempty"`
	AppointmentID string `json:"-"`
	PrincipalID   string `json:"-"`
}

type AppointmentByID struct {
	AppointmentID string
	PrincipalID   string
}

type DoctorAvailability struct {
	DoctorID string `validate:"required"`
	Date     string `validate:"required,date_yyyy_mm_dd"`
}
