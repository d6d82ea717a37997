package exceptions

import (
	"doctor-appointment-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// ErrorKind classifies a failure independently of its transport status.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindTemporal     ErrorKind = "temporal"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindState        ErrorKind = "state"
	KindUnavailable  ErrorKind = "unavailable"
	KindUnauthorized ErrorKind = "unauthorized"
	KindRateLimited  ErrorKind = "rate_limited"
	KindInternal     ErrorKind = "internal"
)

var kindStatusCodes = map[ErrorKind]int{
	KindValidation:   constvars.StatusBadRequest,
	KindTemporal:     constvars.StatusBadRequest,
	KindNotFound:     constvars.StatusNotFound,
	KindConflict:     constvars.StatusConflict,
	KindState:        constvars.StatusBadRequest,
	KindUnavailable:  constvars.StatusServiceUnavailable,
	KindUnauthorized: constvars.StatusUnauthorized,
	KindRateLimited:  constvars.StatusTooManyRequests,
	KindInternal:     constvars.StatusInternalServerError,
}

func (k ErrorKind) StatusCode() int {
	if code, ok := kindStatusCodes[k]; ok {
		return code
	}
	return constvars.StatusInternalServerError
}

type CustomError struct {
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	Kind          ErrorKind `json:"kind,omitempty"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"dev_message,omitempty"`
	Location      *Location `json:"location,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError is used by the ErrX constructors; the recorded location
// is the caller of the constructor.
func BuildNewCustomError(err error, kind ErrorKind, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	customErr := &CustomError{
		StatusCode:    kind.StatusCode(),
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
		cause:         err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customErr
}

// KindOf reports the kind of err, or KindInternal for errors outside this package.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Kind != "" {
		return customErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
