package config

import (
	"doctor-appointment-service/internal/pkg/utils"
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:            utils.GetEnvString("MONGODB_URI", ""),
			Port:           utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:           utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:         utils.GetEnvString("MONGODB_DB_NAME", "doctor_appointment_db"),
			Username:       utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:       utils.GetEnvString("MONGODB_PASSWORD", ""),
			ConnectTimeout: utils.GetEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

// NewInternalConfig reads APP_*, JWT_*, CACHE_* and RABBITMQ_* variables into InternalConfig.
func NewInternalConfig() (*InternalConfig, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", ":8080")
	v.SetDefault("app.version", "v1")
	v.SetDefault("app.address", "localhost")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.endpoint_prefix", "api")
	v.SetDefault("app.max_requests", 20)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.request_timeout_in_seconds", 10)
	v.SetDefault("app.request_body_limit_in_megabyte", 1)
	v.SetDefault("app.auth_max_requests_per_minute", 10)
	v.SetDefault("app.auth_block_time_in_minutes", 5)
	v.SetDefault("app.seed_on_startup", true)
	v.SetDefault("app.seed_lock_timeout_in_seconds", 30)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.exp_time_in_minute", 30)
	v.SetDefault("cache.doctor_list_ttl_in_minutes", 60)
	v.SetDefault("rabbitmq.appointment_event_queue", "appointment_events")

	internalConfig := &InternalConfig{}
	err := v.Unmarshal(internalConfig)
	if err != nil {
		return nil, err
	}

	err = internalConfig.Validate()
	if err != nil {
		return nil, err
	}
	return internalConfig, nil
}

func (c *InternalConfig) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.JWT.ExpTimeInMinute <= 0 {
		return errors.New("JWT_EXP_TIME_IN_MINUTE must be positive")
	}
	return nil
}

func (c *InternalConfig) RequestTimeout() time.Duration {
	return time.Duration(c.App.RequestTimeoutInSeconds) * time.Second
}
