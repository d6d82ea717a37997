package doctors

import (
	"context"
	"doctor-appointment-service/internal/app/config"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/exceptions"
	"doctor-appointment-service/internal/pkg/utils"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) InsertMany(ctx context.Context, doctors []models.Doctor) (int, error) {
	args := m.Called(ctx, doctors)
	return args.Int(0), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App:   config.App{SeedLockTimeoutInSeconds: 30},
		Cache: config.AppCache{DoctorListTTLInMinutes: 60},
	}
}

func testDoctors() []models.Doctor {
	doctors := DefaultDoctors()
	for i := range doctors {
		doctors[i].ID = primitive.NewObjectID()
	}
	return doctors
}

func TestDoctorUsecase_FindAll(t *testing.T) {
	ctx := context.Background()
	doctors := testDoctors()

	t.Run("cache hit", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		redisRepo := new(MockRedisRepository)
		cached, err := json.Marshal(doctors)
		require.NoError(t, err)
		redisRepo.On("Get", ctx, constvars.RedisKeyDoctorList).Return(string(cached), nil)

		usecase := NewDoctorUsecase(doctorRepo, redisRepo, new(MockLockerService), newTestInternalConfig(), zap.NewNop())
		result, err := usecase.FindAll(ctx)
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, doctors[0].ID.Hex(), result[0].ID)
		assert.Equal(t, doctors[0].AvailableSlots, result[0].AvailableSlots)
		doctorRepo.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("cache miss", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", ctx, constvars.RedisKeyDoctorList).Return("", nil)
		doctorRepo.On("FindAll", ctx).Return(doctors, nil)
		redisRepo.On("Set", ctx, constvars.RedisKeyDoctorList, doctors, 60*time.Minute).Return(nil)

		usecase := NewDoctorUsecase(doctorRepo, redisRepo, new(MockLockerService), newTestInternalConfig(), zap.NewNop())
		result, err := usecase.FindAll(ctx)
		require.NoError(t, err)

		assert.Len(t, result, 3)
		redisRepo.AssertExpectations(t)
		doctorRepo.AssertExpectations(t)
	})

	t.Run("redis down falls back to mongo", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", ctx, constvars.RedisKeyDoctorList).Return("", exceptions.ErrRedisGet(errors.New("connection refused"), constvars.RedisKeyDoctorList))
		doctorRepo.On("FindAll", ctx).Return(doctors, nil)
		redisRepo.On("Set", ctx, constvars.RedisKeyDoctorList, mock.Anything, mock.Anything).Return(exceptions.ErrRedisSet(errors.New("connection refused")))

		usecase := NewDoctorUsecase(doctorRepo, redisRepo, new(MockLockerService), newTestInternalConfig(), zap.NewNop())
		result, err := usecase.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("corrupt cache entry", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", ctx, constvars.RedisKeyDoctorList).Return("{not json", nil)
		doctorRepo.On("FindAll", ctx).Return(doctors, nil)
		redisRepo.On("Set", ctx, constvars.RedisKeyDoctorList, mock.Anything, mock.Anything).Return(nil)

		usecase := NewDoctorUsecase(doctorRepo, redisRepo, new(MockLockerService), newTestInternalConfig(), zap.NewNop())
		result, err := usecase.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("mongo failure", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", ctx, constvars.RedisKeyDoctorList).Return("", nil)
		doctorRepo.On("FindAll", ctx).Return(nil, exceptions.ErrMongoDBFindDocument(errors.New("timeout")))

		usecase := NewDoctorUsecase(doctorRepo, redisRepo, new(MockLockerService), newTestInternalConfig(), zap.NewNop())
		_, err := usecase.FindAll(ctx)
		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDoctorUsecase_FindByID(t *testing.T) {
	ctx := context.Background()
	doctor := testDoctors()[0]
	doctorRepo := new(MockDoctorRepository)
	missingID := primitive.NewObjectID().Hex()
	doctorRepo.On("FindByID", ctx, doctor.ID.Hex()).Return(&doctor, nil)
	doctorRepo.On("FindByID", ctx, missingID).Return(nil, nil)

	usecase := NewDoctorUsecase(doctorRepo, new(MockRedisRepository), new(MockLockerService), newTestInternalConfig(), zap.NewNop())

	found, err := usecase.FindByID(ctx, doctor.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, doctor.Name, found.Name)

	_, err = usecase.FindByID(ctx, missingID)
	assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))

	_, err = usecase.FindByID(ctx, "dr-x")
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	doctorRepo.AssertNumberOfCalls(t, "FindByID", 2)
}

func TestDoctorUsecase_SeedDoctors(t *testing.T) {
	ctx := context.Background()
	lockTimeout := 30 * time.Second

	t.Run("seeds empty collection", func(t *testing.T) {
		doctors := DefaultDoctors()
		doctorRepo := new(MockDoctorRepository)
		redisRepo := new(MockRedisRepository)
		locker := new(MockLockerService)
		locker.On("TryLock", ctx, constvars.RedisKeySeedDoctorLock, lockTimeout).Return(true, "lock-1", nil)
		locker.On("Unlock", ctx, constvars.RedisKeySeedDoctorLock, "lock-1").Return(nil)
		doctorRepo.On("Count", ctx).Return(int64(0), nil)
		doctorRepo.On("InsertMany", ctx, doctors).Return(3, nil)
		redisRepo.On("Delete", ctx, constvars.RedisKeyDoctorList).Return(nil)

		usecase := NewDoctorUsecase(doctorRepo, redisRepo, locker, newTestInternalConfig(), zap.NewNop())
		inserted, err := usecase.SeedDoctors(ctx, doctors)
		require.NoError(t, err)

		assert.Equal(t, 3, inserted)
		locker.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
	})

	t.Run("skips populated collection", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		locker := new(MockLockerService)
		locker.On("TryLock", ctx, constvars.RedisKeySeedDoctorLock, lockTimeout).Return(true, "lock-2", nil)
		locker.On("Unlock", ctx, constvars.RedisKeySeedDoctorLock, "lock-2").Return(nil)
		doctorRepo.On("Count", ctx).Return(int64(3), nil)

		usecase := NewDoctorUsecase(doctorRepo, new(MockRedisRepository), locker, newTestInternalConfig(), zap.NewNop())
		inserted, err := usecase.SeedDoctors(ctx, DefaultDoctors())
		require.NoError(t, err)

		assert.Zero(t, inserted)
		doctorRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
		locker.AssertExpectations(t)
	})

	t.Run("another instance holds the lock", func(t *testing.T) {
		doctorRepo := new(MockDoctorRepository)
		locker := new(MockLockerService)
		locker.On("TryLock", ctx, constvars.RedisKeySeedDoctorLock, lockTimeout).Return(false, "", nil)

		usecase := NewDoctorUsecase(doctorRepo, new(MockRedisRepository), locker, newTestInternalConfig(), zap.NewNop())
		inserted, err := usecase.SeedDoctors(ctx, DefaultDoctors())
		require.NoError(t, err)

		assert.Zero(t, inserted)
		doctorRepo.AssertNotCalled(t, "Count", mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid doctor before locking", func(t *testing.T) {
		locker := new(MockLockerService)
		invalid := []models.Doctor{{Name: "Dr. Nobody", Specialty: "Neurology", AvailableSlots: []string{"10:00-09:30"}}}

		usecase := NewDoctorUsecase(new(MockDoctorRepository), new(MockRedisRepository), locker, newTestInternalConfig(), zap.NewNop())
		_, err := usecase.SeedDoctors(ctx, invalid)

		assert.Error(t, err)
		locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFakeDoctors(t *testing.T) {
	assert.Nil(t, FakeDoctors(0))

	doctors := FakeDoctors(25)
	require.Len(t, doctors, 25)
	for _, doctor := range doctors {
		assert.NotEmpty(t, doctor.Name)
		assert.Contains(t, fakeSpecialties, doctor.Specialty)
		assert.GreaterOrEqual(t, len(doctor.AvailableSlots), 2)
		assert.NoError(t, utils.ValidateStruct(&doctor))
	}
}

func TestFakeSlots(t *testing.T) {
	assert.Equal(t, []string{"08:00-08:30", "08:30-09:00", "09:00-09:30"}, fakeSlots(8, 3))
}
