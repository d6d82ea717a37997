package main

import (
	"context"
	"doctor-appointment-service/internal/app/config"
	"doctor-appointment-service/internal/app/contracts"
	"doctor-appointment-service/internal/app/delivery/http/controllers"
	"doctor-appointment-service/internal/app/delivery/http/middlewares"
	"doctor-appointment-service/internal/app/delivery/http/routers"
	"doctor-appointment-service/internal/app/drivers/database"
	"doctor-appointment-service/internal/app/drivers/logger"
	"doctor-appointment-service/internal/app/drivers/messaging"
	"doctor-appointment-service/internal/app/services/core/appointments"
	"doctor-appointment-service/internal/app/services/core/auth"
	"doctor-appointment-service/internal/app/services/core/doctors"
	"doctor-appointment-service/internal/app/services/core/users"
	"doctor-appointment-service/internal/app/services/shared/events"
	"doctor-appointment-service/internal/app/services/shared/locker"
	"doctor-appointment-service/internal/app/services/shared/redis"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/utils"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, zapLogger)
	redisClient := database.NewRedisClient(driverConfig, zapLogger)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, zapLogger)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: internalConfig.RequestTimeout(),
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Error releasing resources", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	var eventPublisher contracts.AppointmentEventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRabbitMQPublisher(
			bootstrap.RabbitMQ,
			bootstrap.Logger,
			bootstrap.InternalConfig.RabbitMQ.AppointmentEventQueue,
		)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoopPublisher(bootstrap.Logger)
	}
	bootstrap.EventPublisherStop = eventPublisher.Close

	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)

	err := userMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	err = appointmentMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}

	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		redisRepository,
		lockService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	if bootstrap.InternalConfig.App.SeedOnStartup {
		_, err = doctorUsecase.SeedDoctors(ctx, doctors.DefaultDoctors())
		if err != nil {
			return err
		}
	}

	availabilityChecker := appointments.NewAvailabilityChecker(doctorUsecase, appointmentMongoRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		availabilityChecker,
		doctorUsecase,
		eventPublisher,
		bootstrap.Logger,
	)

	identityProvider := auth.NewJWTIdentityProvider(userMongoRepository, bootstrap.InternalConfig)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, identityProvider, bootstrap.Logger)

	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, identityProvider, bootstrap.InternalConfig)
	authRateLimiter := middlewares.NewRateLimiter(
		bootstrap.InternalConfig.App.AuthMaxRequestsPerMinute,
		time.Minute,
		time.Duration(bootstrap.InternalConfig.App.AuthBlockTimeInMinutes)*time.Minute,
		bootstrap.Logger,
	)

	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.InternalConfig, map[string]controllers.ReadinessCheck{
		"mongodb": func(ctx context.Context) error {
			return bootstrap.MongoDB.Ping(ctx, readpref.Primary())
		},
		"redis": redisRepository.Ping,
	})

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authRateLimiter,
		authController,
		appointmentController,
		doctorController,
		healthController,
	)
	return nil
}
