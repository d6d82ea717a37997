package appointments

import (
	"context"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/exceptions"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Runs against a real MongoDB when MONGODB_TEST_URI is set.
func newMongoTestRepository(t *testing.T) (*AppointmentMongoRepository, *mongo.Database) {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	dbName := fmt.Sprintf("appointments_test_%d", time.Now().UnixNano())
	repo := NewAppointmentMongoRepository(client, dbName).(*AppointmentMongoRepository)
	require.NoError(t, repo.EnsureIndexes(ctx))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client.Database(dbName).Drop(ctx)
		client.Disconnect(ctx)
	})
	return repo, client.Database(dbName)
}

func TestAppointmentMongoRepository_BookedSlotIndex(t *testing.T) {
	repo, db := newMongoTestRepository(t)
	ctx := context.Background()

	doctor := models.Doctor{ID: primitive.NewObjectID(), Name: "Dr. X", Specialty: "Cardiology", AvailableSlots: []string{"09:00-09:30", "09:30-10:00"}}
	_, err := db.Collection("doctors").InsertOne(ctx, doctor)
	require.NoError(t, err)

	newBooking := func(userID, timeSlot string) *models.Appointment {
		appointment := &models.Appointment{
			UserID:   userID,
			DoctorID: doctor.ID,
			Date:     testDate,
			TimeSlot: timeSlot,
			Status:   models.AppointmentStatusBooked,
		}
		appointment.SetCreatedAtUpdatedAt(time.Now().UTC())
		return appointment
	}

	firstID, err := repo.Insert(ctx, newBooking(testUserID, "09:00-09:30"))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, newBooking(testOtherUserID, "09:00-09:30"))
	assert.True(t, exceptions.IsKind(err, exceptions.KindConflict))

	taken, err := repo.ExistsBooked(ctx, doctor.ID.Hex(), testDate, "09:00-09:30", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsBooked(ctx, doctor.ID.Hex(), testDate, "09:00-09:30", firstID)
	require.NoError(t, err)
	assert.False(t, taken)

	cancelled := models.AppointmentStatusCancelled
	matched, err := repo.UpdateIfStatus(ctx, firstID, testUserID, models.AppointmentStatusBooked, models.AppointmentUpdate{Status: &cancelled, UpdatedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = repo.UpdateIfStatus(ctx, firstID, testUserID, models.AppointmentStatusBooked, models.AppointmentUpdate{Status: &cancelled, UpdatedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.False(t, matched, "cancelled rows no longer match the booked filter")

	secondID, err := repo.Insert(ctx, newBooking(testOtherUserID, "09:00-09:30"))
	require.NoError(t, err)

	thirdID, err := repo.Insert(ctx, newBooking(testUserID, "09:30-10:00"))
	require.NoError(t, err)

	slot := "09:00-09:30"
	_, err = repo.UpdateIfStatus(ctx, thirdID, testUserID, models.AppointmentStatusBooked, models.AppointmentUpdate{TimeSlot: &slot, UpdatedAt: time.Now().UTC()})
	assert.True(t, exceptions.IsKind(err, exceptions.KindConflict))

	booked, err := repo.FindBookedSlots(ctx, doctor.ID.Hex(), testDate)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"09:00-09:30", "09:30-10:00"}, booked)

	count, err := db.Collection("appointments").CountDocuments(ctx, bson.M{"status": models.AppointmentStatusBooked})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	foreign, err := repo.FindByIDAndUser(ctx, secondID, testUserID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	details, err := repo.ListDetailsByUser(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Dr. X", details[0].DoctorName)
	assert.Equal(t, "09:00-09:30", details[0].TimeSlot)
	assert.Equal(t, models.AppointmentStatusCancelled, details[0].Status)
}
