package doctors

import (
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const fakeSlotLength = 30 * time.Minute

var fakeSpecialties = []string{
	"Internal Medicine",
	"Cardiology",
	"Neurology",
	"Dermatology",
	"Pediatrics",
	"Orthopedics",
	"Endocrinology",
	"Psychiatry",
}

// DefaultDoctors is inserted when the doctors collection is empty.
func DefaultDoctors() []models.Doctor {
	return []models.Doctor{
		{
			Name:           "Dr. Ahmad Mohammadi",
			Specialty:      "Internal Medicine",
			AvailableSlots: []string{"09:00-09:30", "09:30-10:00", "10:00-10:30", "11:00-11:30"},
		},
		{
			Name:           "Dr. Sara Hosseini",
			Specialty:      "Cardiology",
			AvailableSlots: []string{"14:00-14:30", "14:30-15:00", "15:00-15:30", "16:00-16:30"},
		},
		{
			Name:           "Dr. Reza Karimi",
			Specialty:      "Neurology",
			AvailableSlots: []string{"08:00-08:30", "08:30-09:00", "10:30-11:00", "11:30-12:00"},
		},
	}
}

// FakeDoctors generates count doctors with consecutive half-hour slots between 08:00 and 17:00.
func FakeDoctors(count int) []models.Doctor {
	if count <= 0 {
		return nil
	}
	doctors := make([]models.Doctor, 0, count)
	for i := 0; i < count; i++ {
		doctors = append(doctors, models.Doctor{
			Name:           fmt.Sprintf("Dr. %s", gofakeit.Name()),
			Specialty:      fakeSpecialties[gofakeit.Number(0, len(fakeSpecialties)-1)],
			AvailableSlots: fakeSlots(gofakeit.Number(8, 13), gofakeit.Number(2, 6)),
		})
	}
	return doctors
}

func fakeSlots(startHour, count int) []string {
	start := time.Date(0, 1, 1, startHour, 0, 0, 0, time.UTC)
	slots := make([]string, 0, count)
	for i := 0; i < count; i++ {
		end := start.Add(fakeSlotLength)
		slots = append(slots, start.Format(constvars.TimeLayoutHHMM)+constvars.TimeSlotSeparator+end.Format(constvars.TimeLayoutHHMM))
		start = end
	}
	return slots
}
