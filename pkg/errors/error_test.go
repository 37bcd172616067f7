package errors

import (
	"testing"

	stderrors "errors"

	"github.com/stretchr/testify/assert"
)

func TestDetails_ErrorReturnsMessage(t *testing.T) {
	err := New(CodeRedisConnect, "could not reach redis", "")
	assert.Equal(t, "could not reach redis", err.Error())
}

func TestCodeEquals_MatchesCode(t *testing.T) {
	err := New(CodeKafkaRead, "read failed", "")
	assert.True(t, CodeEquals(err, CodeKafkaRead))
	assert.False(t, CodeEquals(err, CodeKafkaWrite))
}

func TestCodeEquals_FalseForPlainError(t *testing.T) {
	assert.False(t, CodeEquals(stderrors.New("boom"), CodeKafkaRead))
}

func TestTracerFromError_WrapsPlainError(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	tracer := TracerFromError(cause)

	assert.Equal(t, cause.Error(), tracer.Error())
	assert.NotNil(t, tracer.Unwrap())

	st, ok := tracer.Unwrap().(StackTracer)
	assert.True(t, ok)
	assert.NotEmpty(t, st.StackTrace())
}

func TestErrorTracer_WrapAttachesCause(t *testing.T) {
	tracer := NewTracer("snapshot persist failed")
	cause := stderrors.New("EOF")
	tracer.Wrap(cause)

	assert.Equal(t, "snapshot persist failed", tracer.Error())
	assert.NotEmpty(t, tracer.StackTrace())
}
