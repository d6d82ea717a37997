package models

import (
	"doctor-appointment-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		kind exceptions.ErrorKind
	}{
		{"reschedule booked", AppointmentStatusBooked, AppointmentStatusBooked, ""},
		{"cancel booked", AppointmentStatusBooked, AppointmentStatusCancelled, ""},
		{"reschedule cancelled", AppointmentStatusCancelled, AppointmentStatusBooked, exceptions.KindState},
		{"cancel cancelled", AppointmentStatusCancelled, AppointmentStatusCancelled, exceptions.KindState},
		{"unknown status", AppointmentStatus("pending"), AppointmentStatusBooked, exceptions.KindState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatusTransition(tt.from, tt.to)
			if tt.kind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, exceptions.IsKind(err, tt.kind))
		})
	}
}

func TestTimeModel_NextUpdatedAt(t *testing.T) {
	base := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	model := TimeModel{}
	model.SetCreatedAtUpdatedAt(base)

	assert.Equal(t, base.Add(time.Minute), model.NextUpdatedAt(base.Add(time.Minute)))
	assert.Equal(t, base, model.NextUpdatedAt(base.Add(-time.Minute)), "updated_at must not move backwards")
}

func TestDoctor_OffersSlot(t *testing.T) {
	doctor := Doctor{AvailableSlots: []string{"09:00-09:30", "09:30-10:00"}}

	assert.True(t, doctor.OffersSlot("09:30-10:00"))
	assert.False(t, doctor.OffersSlot("10:00-10:30"))
}

func TestAppointmentDetail_ConvertIntoResponse(t *testing.T) {
	doctorID := primitive.NewObjectID()
	detail := AppointmentDetail{
		Appointment: Appointment{
			ID:       primitive.NewObjectID(),
			DoctorID: doctorID,
			Date:     "2030-01-15",
			TimeSlot: "09:00-09:30",
			Status:   AppointmentStatusBooked,
		},
		DoctorName:      "Dr. Ahmad Mohammadi",
		DoctorSpecialty: "Internal Medicine",
	}

	response := detail.ConvertIntoResponse()
	assert.Equal(t, detail.ID.Hex(), response.ID)
	assert.Equal(t, doctorID.Hex(), response.DoctorID)
	assert.Equal(t, "Dr. Ahmad Mohammadi", response.DoctorName)
	assert.Equal(t, "booked", response.Status)
}
