package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestID_UsesProvidedID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetRequestID(ctx))
}

func TestWithRequestID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	id := GetRequestID(ctx)
	assert.NotEmpty(t, id)
}

func TestGetRequestID_EmptyWhenUnset(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}
