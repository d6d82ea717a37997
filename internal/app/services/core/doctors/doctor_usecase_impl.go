package doctors

import (
	"context"
	"doctor-appointment-service/internal/app/config"
	"doctor-appointment-service/internal/app/contracts"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/dto/responses"
	"doctor-appointment-service/internal/pkg/exceptions"
	"doctor-appointment-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	LockerService    contracts.LockerService
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		RedisRepository:  redisRepository,
		LockerService:    lockerService,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

// FindAll serves the directory from Redis when possible. A Redis failure degrades
// to a direct MongoDB read instead of failing the request.
func (uc *doctorUsecase) FindAll(ctx context.Context) ([]responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var doctors []models.Doctor

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyDoctorList)
	if err != nil {
		uc.Log.Warn("doctorUsecase.FindAll error retrieving data from Redis, falling back to MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if cached != "" {
		err = json.Unmarshal([]byte(cached), &doctors)
		if err != nil {
			uc.Log.Warn("doctorUsecase.FindAll error parsing JSON from Redis, falling back to MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			doctors = nil
		}
	}

	if doctors == nil {
		doctors, err = uc.DoctorRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("doctorUsecase.FindAll error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		ttl := time.Duration(uc.InternalConfig.Cache.DoctorListTTLInMinutes) * time.Minute
		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyDoctorList, doctors, ttl)
		if err != nil {
			uc.Log.Warn("doctorUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	response := make([]responses.Doctor, len(doctors))
	for i := range doctors {
		response[i] = doctors[i].ConvertIntoResponse()
	}

	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Debug("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if !primitive.IsValidObjectID(doctorID) {
		return nil, exceptions.ErrInvalidDoctorID(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindByID error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

// SeedDoctors inserts doctors only into an empty collection. The Redis lock keeps
// concurrently starting replicas from seeding twice.
func (uc *doctorUsecase) SeedDoctors(ctx context.Context, doctors []models.Doctor) (int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.SeedDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(doctors)),
	)

	for i := range doctors {
		err := utils.ValidateStruct(&doctors[i])
		if err != nil {
			return 0, exceptions.ErrInvalidSeedDoctor(err)
		}
	}

	lockTimeout := time.Duration(uc.InternalConfig.App.SeedLockTimeoutInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, constvars.RedisKeySeedDoctorLock, lockTimeout)
	if err != nil {
		return 0, err
	}
	if !acquired {
		uc.Log.Info("doctorUsecase.SeedDoctors another instance is seeding, skipping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return 0, nil
	}
	defer func() {
		err := uc.LockerService.Unlock(ctx, constvars.RedisKeySeedDoctorLock, lockValue)
		if err != nil {
			uc.Log.Warn("doctorUsecase.SeedDoctors error releasing seed lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	existing, err := uc.DoctorRepository.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		uc.Log.Info("doctorUsecase.SeedDoctors doctors already present, skipping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCountKey, existing),
		)
		return 0, nil
	}

	inserted, err := uc.DoctorRepository.InsertMany(ctx, doctors)
	if err != nil {
		return 0, err
	}

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyDoctorList)
	if err != nil {
		uc.Log.Warn("doctorUsecase.SeedDoctors error invalidating doctor cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("doctorUsecase.SeedDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, inserted),
	)
	return inserted, nil
}
