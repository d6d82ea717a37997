package appointments

import (
	"context"
	"doctor-appointment-service/internal/app/contracts"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/exceptions"
	"doctor-appointment-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	indexUniqueBookedSlot = "uniq_booked_doctor_date_slot"
	indexUserAppointments = "idx_user_date_slot"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes creates the partial unique index that allows at most one booked
// appointment per (doctor, date, slot). Cancelled rows fall outside the filter.
func (repo *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "doctor_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time_slot", Value: 1},
			},
			Options: options.Index().
				SetName(indexUniqueBookedSlot).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.AppointmentStatusBooked}),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time_slot", Value: 1},
			},
			Options: options.Index().SetName(indexUserAppointments),
		},
	})
	if err != nil {
		return utils.WrapMongoError(err, exceptions.ErrMongoDBCreateIndex)
	}
	return nil
}

func (repo *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateBookedSlot(err)
		}
		return "", utils.WrapMongoError(err, exceptions.ErrMongoDBInsertDocument)
	}
	insertedID := result.InsertedID.(primitive.ObjectID)
	appointment.ID = insertedID
	return insertedID.Hex(), nil
}

func (repo *AppointmentMongoRepository) FindByIDAndUser(ctx context.Context, appointmentID, userID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "user_id": userID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.WrapMongoError(err, exceptions.ErrMongoDBFindDocument)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindDetailByIDAndUser(ctx context.Context, appointmentID, userID string) (*models.AppointmentDetail, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	details, err := repo.aggregateDetails(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (repo *AppointmentMongoRepository) ListDetailsByUser(ctx context.Context, userID string) ([]models.AppointmentDetail, error) {
	return repo.aggregateDetails(ctx, bson.M{"user_id": userID})
}

// ExistsBooked reports whether another booked appointment holds the triple.
// excludeAppointmentID may be empty.
func (repo *AppointmentMongoRepository) ExistsBooked(ctx context.Context, doctorID, date, timeSlot, excludeAppointmentID string) (bool, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"doctor_id": doctorObjectID,
		"date":      date,
		"time_slot": timeSlot,
		"status":    models.AppointmentStatusBooked,
	}
	if excludeAppointmentID != "" {
		excludeObjectID, err := primitive.ObjectIDFromHex(excludeAppointmentID)
		if err != nil {
			return false, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["_id"] = bson.M{"$ne": excludeObjectID}
	}

	count, err := repo.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, utils.WrapMongoError(err, exceptions.ErrMongoDBCountDocuments)
	}
	return count > 0, nil
}

func (repo *AppointmentMongoRepository) FindBookedSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	values, err := repo.Collection.Distinct(ctx, "time_slot", bson.M{
		"doctor_id": doctorObjectID,
		"date":      date,
		"status":    models.AppointmentStatusBooked,
	})
	if err != nil {
		return nil, utils.WrapMongoError(err, exceptions.ErrMongoDBFindDocument)
	}

	slots := make([]string, 0, len(values))
	for _, value := range values {
		if slot, ok := value.(string); ok {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// UpdateIfStatus applies update only while the appointment is owned by userID and
// still has the expected status. matched is false when either no longer holds.
func (repo *AppointmentMongoRepository) UpdateIfStatus(ctx context.Context, appointmentID, userID string, expected models.AppointmentStatus, update models.AppointmentUpdate) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	set := bson.M{"updated_at": update.UpdatedAt}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.TimeSlot != nil {
		set["time_slot"] = *update.TimeSlot
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	filter := bson.M{
		"_id":     objectID,
		"user_id": userID,
		"status":  expected,
	}
	result, err := repo.Collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, exceptions.ErrMongoDBDuplicateBookedSlot(err)
		}
		return false, utils.WrapMongoError(err, exceptions.ErrMongoDBUpdateDocument)
	}
	return result.MatchedCount > 0, nil
}

func (repo *AppointmentMongoRepository) aggregateDetails(ctx context.Context, match bson.M) ([]models.AppointmentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionDoctors,
			"localField":   "doctor_id",
			"foreignField": "_id",
			"as":           "doctor",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$doctor",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$addFields", Value: bson.M{
			"doctor_name":      bson.M{"$ifNull": bson.A{"$doctor.name", ""}},
			"doctor_specialty": bson.M{"$ifNull": bson.A{"$doctor.specialty", ""}},
		}}},
		{{Key: "$project", Value: bson.M{"doctor": 0}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "date", Value: 1},
			{Key: "time_slot", Value: 1},
			{Key: "_id", Value: 1},
		}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, utils.WrapMongoError(err, exceptions.ErrMongoDBAggregateDocuments)
	}

	details := []models.AppointmentDetail{}
	err = cursor.All(ctx, &details)
	if err != nil {
		return nil, utils.WrapMongoError(err, exceptions.ErrMongoDBIterateDocuments)
	}
	return details, nil
}
