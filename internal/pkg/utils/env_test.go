package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DAS_TEST_INT", "42")
	t.Setenv("DAS_TEST_BAD_INT", "forty-two")
	t.Setenv("DAS_TEST_BOOL", "true")
	t.Setenv("DAS_TEST_DURATION", "1500ms")
	t.Setenv("DAS_TEST_EMPTY", "")

	assert.Equal(t, 42, GetEnvInt("DAS_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("DAS_TEST_BAD_INT", 7))
	assert.True(t, GetEnvBool("DAS_TEST_BOOL", false))
	assert.Equal(t, 1500*time.Millisecond, GetEnvDuration("DAS_TEST_DURATION", time.Second))
	assert.Equal(t, "fallback", GetEnvString("DAS_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("DAS_TEST_UNSET", "fallback"))
}
