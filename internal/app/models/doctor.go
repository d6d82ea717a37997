package models

import (
	"doctor-appointment-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" validate:"required"`
	Specialty      string             `json:"specialty" bson:"specialty" validate:"required"`
	AvailableSlots []string           `json:"available_slots" bson:"available_slots" validate:"required,min=1,dive,slot_label"`
}

// OffersSlot reports whether label is one of the doctor's slot labels.
func (d *Doctor) OffersSlot(label string) bool {
	for _, slot := range d.AvailableSlots {
		if slot == label {
			return true
		}
	}
	return false
}

func (d *Doctor) ConvertIntoResponse() responses.Doctor {
	slots := make([]string, len(d.AvailableSlots))
	copy(slots, d.AvailableSlots)
	return responses.Doctor{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Specialty:      d.Specialty,
		AvailableSlots: slots,
	}
}
