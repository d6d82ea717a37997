package main

import (
	"context"
	"doctor-appointment-service/internal/app/config"
	"doctor-appointment-service/internal/app/drivers/database"
	"doctor-appointment-service/internal/app/drivers/logger"
	"doctor-appointment-service/internal/app/services/core/appointments"
	"doctor-appointment-service/internal/app/services/core/doctors"
	"doctor-appointment-service/internal/app/services/core/users"
	"doctor-appointment-service/internal/app/services/shared/locker"
	"doctor-appointment-service/internal/app/services/shared/redis"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/utils"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

func main() {
	extra := flag.Int("extra", 0, "number of generated doctors to add to the default set")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	mongoDB := database.NewMongoDB(driverConfig, zapLogger)
	redisClient := database.NewRedisClient(driverConfig, zapLogger)
	bootstrap := &config.Bootstrap{
		MongoDB: mongoDB,
		Redis:   redisClient,
		Logger:  zapLogger,
	}
	defer func() {
		err := bootstrap.Shutdown(context.Background())
		if err != nil {
			zapLogger.Error("Error releasing resources", zap.Error(err))
		}
	}()

	dbName := driverConfig.MongoDB.DbName
	err = users.NewUserMongoRepository(mongoDB, dbName).EnsureIndexes(ctx)
	if err != nil {
		zapLogger.Error("Error creating user indexes", zap.Error(err))
		return
	}
	err = appointments.NewAppointmentMongoRepository(mongoDB, dbName).EnsureIndexes(ctx)
	if err != nil {
		zapLogger.Error("Error creating appointment indexes", zap.Error(err))
		return
	}

	redisRepository := redis.NewRedisRepository(redisClient)
	doctorUsecase := doctors.NewDoctorUsecase(
		doctors.NewDoctorMongoRepository(mongoDB, dbName),
		redisRepository,
		locker.NewLockService(redisRepository, zapLogger),
		internalConfig,
		zapLogger,
	)

	gofakeit.Seed(time.Now().UnixNano())
	seed := append(doctors.DefaultDoctors(), doctors.FakeDoctors(*extra)...)

	inserted, err := doctorUsecase.SeedDoctors(ctx, seed)
	if err != nil {
		zapLogger.Error("Error seeding doctors", zap.Error(err))
		return
	}
	zapLogger.Info("Seed complete", zap.Int(constvars.LoggingCountKey, inserted))
}
