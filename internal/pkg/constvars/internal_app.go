package constvars

type ContextKey string

const (
	ResourceAuth         = "auth"
	ResourceAppointments = "appointments"
	ResourceDoctors      = "doctors"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PRINCIPAL_ID_KEY         ContextKey = "principal_id"
)

const (
	REQUEST_ID_PREFIX = "DAS_SVC_"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
)

const (
	RedisKeyDoctorList     = "doctors:list"
	RedisKeySeedDoctorLock = "lock:seed:doctors"
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
	TimeLayoutHHMM     = "15:04"
	TimeSlotSeparator  = "-"
)

const (
	AuthTokenType      = "bearer"
	AuthJWTSubjectKey  = "sub"
	AuthJWTExpiryKey   = "exp"
	AuthJWTIssuedAtKey = "iat"
)

const (
	EventAppointmentBooked      = "appointment.booked"
	EventAppointmentRescheduled = "appointment.rescheduled"
	EventAppointmentCancelled   = "appointment.cancelled"
)
