package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"email_address":   "must be a valid email",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"mongodb":         "must be a valid identifier",
	"date_yyyy_mm_dd": "must be a valid date in YYYY-MM-DD format",
	"slot_label":      "must be a time slot whose start is before its end",
	"dive":            "contains an invalid entry",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientServiceUnavailable            = "the service is temporarily unavailable, please try again"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientRequestBodyTooLarge           = "request body is too large"
	ErrClientNotAuthenticated              = "Could not validate credentials"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyRegistered        = "Email already registered"

	ErrClientInvalidDateFormat           = "Invalid date format. Use YYYY-MM-DD"
	ErrClientInvalidTimeSlotFormat       = "Invalid time slot format. Use HH:MM-HH:MM"
	ErrClientAppointmentDateNotInFuture  = "Appointment date must be in the future"
	ErrClientInvalidDoctorID             = "Invalid doctor ID format"
	ErrClientInvalidAppointmentID        = "Invalid appointment ID format"
	ErrClientSlotNotAvailable            = "Time slot is not available or doctor not found"
	ErrClientNewSlotNotAvailable         = "New time slot is not available"
	ErrClientAppointmentNotFound         = "Appointment not found"
	ErrClientDoctorNotFound              = "Doctor not found"
	ErrClientCannotUpdateCancelled       = "Cannot update cancelled appointment"
	ErrClientAppointmentAlreadyCancelled = "Appointment is already cancelled"
	ErrClientNoFieldsToUpdate            = "No valid fields to update"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevMissingPrincipal          = "principal id missing from context"
	ErrDevRequestBodyTooLarge       = "request body exceeds configured limit"
	ErrDevTooManyRequests           = "rate limit exceeded for client address"
	ErrDevPanicRecovered            = "recovered from panic"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "email not found or password mismatch"
	ErrDevEmailAlreadyExists        = "email already exists in users collection"
	ErrDevAuthTokenMissing          = "authorization header missing or not a bearer token"
	ErrDevAuthTokenInvalid          = "token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthGenerateToken         = "failed to sign token"
	ErrDevAuthSubjectMissing        = "token has no subject claim"
	ErrDevDateFormat                = "date does not match YYYY-MM-DD or is not a calendar date"
	ErrDevTimeSlotFormat            = "time slot does not match HH:MM-HH:MM or halves are not valid times"
	ErrDevDateInPast                = "date is before today"
	ErrDevNotObjectID               = "value is not a valid ObjectID hex"
	ErrDevSlotUnavailable           = "slot is not offered or already booked"
	ErrDevDuplicateBookedSlot       = "duplicate key on booked appointment triple"
	ErrDevAppointmentNotFound       = "appointment not found or not owned by principal"
	ErrDevDoctorNotFound            = "doctor not found"
	ErrDevInvalidStatusTransition   = "invalid appointment status transition"
	ErrDevNoFieldsProvided          = "no fields provided for reschedule"
	ErrDevConcurrentStatusChange    = "appointment changed state during update"
	ErrDevMongoDBUnavailable        = "mongodb unreachable or timed out"
	ErrDevMongoDBFindDocument       = "failed to find document"
	ErrDevMongoDBIterateDocuments   = "failed to iterate documents"
	ErrDevMongoDBInsertDocument     = "failed to insert document"
	ErrDevMongoDBUpdateDocument     = "failed to update document"
	ErrDevMongoDBAggregateDocuments = "failed to aggregate documents"
	ErrDevMongoDBCountDocuments     = "failed to count documents"
	ErrDevMongoDBCreateIndex        = "failed to create index"
	ErrDevRedisSet                  = "failed to set redis key"
	ErrDevRedisGet                  = "failed to get redis key %s"
	ErrDevRedisDelete               = "failed to delete redis key"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevInvalidSeedDoctor         = "seed doctor failed validation"
)
