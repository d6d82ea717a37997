package utils

import (
	"context"
	"doctor-appointment-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// WrapMongoError keeps connectivity failures distinguishable from other store errors.
func WrapMongoError(err error, fallback func(error) *exceptions.CustomError) *exceptions.CustomError {
	if err == nil {
		return nil
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrMongoDBUnavailable(err)
	}
	return fallback(err)
}
