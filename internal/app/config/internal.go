package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Cache    AppCache    `mapstructure:"cache"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	AuthMaxRequestsPerMinute   int    `mapstructure:"auth_max_requests_per_minute"`
	AuthBlockTimeInMinutes     int    `mapstructure:"auth_block_time_in_minutes"`
	SeedOnStartup              bool   `mapstructure:"seed_on_startup"`
	SeedLockTimeoutInSeconds   int    `mapstructure:"seed_lock_timeout_in_seconds"`
}

type AppJWT struct {
	Secret          string `mapstructure:"secret"`
	ExpTimeInMinute int    `mapstructure:"exp_time_in_minute"`
}

type AppCache struct {
	DoctorListTTLInMinutes int `mapstructure:"doctor_list_ttl_in_minutes"`
}

type AppRabbitMQ struct {
	AppointmentEventQueue string `mapstructure:"appointment_event_queue"`
}
