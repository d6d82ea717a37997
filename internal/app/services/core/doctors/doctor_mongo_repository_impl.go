package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, utils.WrapMongoError(err, exceptions.ErrMongoDBFindDocument)
	}
	err = cursor.All(ctx, &doctors)
	if err != nil {
		return nil, utils.WrapMongoError(err, exceptions.ErrMongoDBIterateDocuments)
	}
	return doctors, nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.WrapMongoError(err, exceptions.ErrMongoDBFindDocument)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, utils.WrapMongoError(err, exceptions.ErrMongoDBCountDocuments)
	}
	return count, nil
}

func (repo *DoctorMongoRepository) InsertMany(ctx context.Context, doctors []models.Doctor) (int, error) {
	if len(doctors) == 0 {
		return 0, nil
	}
	documents := make([]interface{}, len(doctors))
	for i := range doctors {
		documents[i] = doctors[i]
	}
	result, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, utils.WrapMongoError(err, exceptions.ErrMongoDBInsertDocument)
	}
	return len(result.InsertedIDs), nil
}
