package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// NextUpdatedAt never moves updated_at backwards, even if the clock does.
func (m *TimeModel) NextUpdatedAt(now time.Time) time.Time {
	if now.Before(m.UpdatedAt) {
		return m.UpdatedAt
	}
	return now
}
