// Package util provides small context-propagation helpers shared by the
// ambient layers (ingress, egress, snapshot, logging) that wrap the core
// matching engine. The core itself never imports this package.
package util

import (
	"context"

	"github.com/google/uuid"
)

type key string

const requestIDKey = key("x-request-id")

// WithRequestID returns a context carrying id, generating a fresh uuid-v4
// correlation id if id is empty. The app engine calls this once per
// consumed message so the *Context log lines written while handling it
// share one id. Published trade messages do not carry the id.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the request id carried by ctx, or "" if none was set.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
