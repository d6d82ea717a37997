package responses

type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	AvailableSlots []string `json:"available_slots"`
}

type DoctorAvailability struct {
	DoctorID  string   `json:"doctor_id"`
	Date      string   `json:"date"`
	FreeSlots []string `json:"free_slots"`
}
