package utils

import (
	"doctor-appointment-service/internal/pkg/dto/requests"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotHolder struct {
	Slots []string `json:"slots" validate:"required,min=1,dive,slot_label"`
}

func TestValidateStruct_Signup(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := ValidateStruct(&requests.Signup{Email: "patient@example.com", Password: "correct-horse"})
		assert.NoError(t, err)
	})

	t.Run("bad email", func(t *testing.T) {
		err := ValidateStruct(&requests.Signup{Email: "patient@", Password: "correct-horse"})
		require.Error(t, err)

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "email", validationErrors[0].Field())
		assert.Equal(t, "email_address", validationErrors[0].Tag())
	})

	t.Run("short password", func(t *testing.T) {
		err := ValidateStruct(&requests.Signup{Email: "patient@example.com", Password: "short"})
		require.Error(t, err)

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "password", validationErrors[0].Field())
		assert.Equal(t, "min", validationErrors[0].Tag())
	})
}

func TestValidateStruct_DoctorAvailability(t *testing.T) {
	assert.NoError(t, ValidateStruct(&requests.DoctorAvailability{DoctorID: "abc", Date: "2030-01-15"}))
	assert.Error(t, ValidateStruct(&requests.DoctorAvailability{DoctorID: "abc", Date: "15-01-2030"}))
	assert.Error(t, ValidateStruct(&requests.DoctorAvailability{Date: "2030-01-15"}))
}

func TestValidateStruct_SlotLabel(t *testing.T) {
	assert.NoError(t, ValidateStruct(&slotHolder{Slots: []string{"09:00-09:30", "09:30-10:00"}}))
	assert.Error(t, ValidateStruct(&slotHolder{Slots: []string{"09:00-09:30", "10:00-09:30"}}))
	assert.Error(t, ValidateStruct(&slotHolder{Slots: []string{}}))
}
