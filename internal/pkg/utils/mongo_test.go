package utils

import (
	"context"
	"doctor-appointment-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapMongoError(t *testing.T) {
	assert.Nil(t, WrapMongoError(nil, exceptions.ErrMongoDBFindDocument))

	timeout := WrapMongoError(context.DeadlineExceeded, exceptions.ErrMongoDBFindDocument)
	assert.Equal(t, exceptions.KindUnavailable, timeout.Kind)

	other := WrapMongoError(errors.New("bad query"), exceptions.ErrMongoDBFindDocument)
	assert.Equal(t, exceptions.KindInternal, other.Kind)
}
