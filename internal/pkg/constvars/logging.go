package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingPrincipalIDKey    = "principal_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingDateKey           = "date"
	LoggingTimeSlotKey       = "time_slot"
	LoggingStatusKey         = "status"
	LoggingEmailKey          = "email"
	LoggingCountKey          = "count"
	LoggingEventTypeKey      = "event_type"
	LoggingQueueKey          = "queue"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingAvailableKey      = "available"

	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingLocationKey          = "location"
	LoggingIsClientRequestIDKey = "is_client_request_id"
	LoggingErrorKindKey         = "kind"
	LoggingDependencyKey        = "dependency"
)
