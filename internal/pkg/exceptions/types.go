package exceptions

import (
	"doctor-appointment-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, KindUnavailable, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
		customErr.StatusCode = constvars.StatusGatewayTimeout
		return customErr
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrMissingPrincipal = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.ErrClientNotAuthenticated, constvars.ErrDevMissingPrincipal)
	}
	ErrRequestBodyTooLarge = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, KindValidation, constvars.ErrClientRequestBodyTooLarge, constvars.ErrDevRequestBodyTooLarge)
		customErr.StatusCode = constvars.StatusRequestEntityTooBig
		return customErr
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, KindRateLimited, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}
)

// Identity
var (
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientEmailAlreadyRegistered, constvars.ErrDevEmailAlreadyExists)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.ErrClientNotAuthenticated, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.ErrClientNotAuthenticated, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenSigningMethod = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.ErrClientNotAuthenticated, constvars.ErrDevAuthSigningMethod)
	}
	ErrTokenSubjectMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.ErrClientNotAuthenticated, constvars.ErrDevAuthSubjectMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
)

// Booking
var (
	ErrInvalidDateFormat = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientInvalidDateFormat, constvars.ErrDevDateFormat)
	}
	ErrInvalidTimeSlotFormat = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientInvalidTimeSlotFormat, constvars.ErrDevTimeSlotFormat)
	}
	ErrDateNotInFuture = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTemporal, constvars.ErrClientAppointmentDateNotInFuture, constvars.ErrDevDateInPast)
	}
	ErrInvalidDoctorID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientInvalidDoctorID, constvars.ErrDevNotObjectID)
	}
	ErrInvalidAppointmentID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientInvalidAppointmentID, constvars.ErrDevNotObjectID)
	}
	ErrSlotNotAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindConflict, constvars.ErrClientSlotNotAvailable, constvars.ErrDevSlotUnavailable)
	}
	ErrNewSlotNotAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindConflict, constvars.ErrClientNewSlotNotAvailable, constvars.ErrDevSlotUnavailable)
	}
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotFound)
	}
	ErrDoctorNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDoctorNotFound)
	}
	ErrCannotUpdateCancelled = func(err error) *CustomError {
		return BuildNewCustomError(err, KindState, constvars.ErrClientCannotUpdateCancelled, constvars.ErrDevInvalidStatusTransition)
	}
	ErrAppointmentAlreadyCancelled = func(err error) *CustomError {
		return BuildNewCustomError(err, KindState, constvars.ErrClientAppointmentAlreadyCancelled, constvars.ErrDevInvalidStatusTransition)
	}
	ErrInvalidStatusTransition = func(err error, from, to string) *CustomError {
		return BuildNewCustomError(err, KindState, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s: %s -> %s", constvars.ErrDevInvalidStatusTransition, from, to))
	}
	ErrNoFieldsToUpdate = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientNoFieldsToUpdate, constvars.ErrDevNoFieldsProvided)
	}
)

// Storage
var (
	ErrMongoDBUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnavailable, constvars.ErrClientServiceUnavailable, constvars.ErrDevMongoDBUnavailable)
	}
	ErrMongoDBDuplicateBookedSlot = func(err error) *CustomError {
		return BuildNewCustomError(err, KindConflict, constvars.ErrClientSlotNotAvailable, constvars.ErrDevDuplicateBookedSlot)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevNotObjectID)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBIterateDocuments)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBUpdateDocument)
	}
	ErrMongoDBAggregateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBAggregateDocuments)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBCountDocuments)
	}
	ErrMongoDBCreateIndex = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBCreateIndex)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
	ErrInvalidSeedDoctor = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInvalidSeedDoctor)
	}
)
