package redis

import (
	"context"
	"time"
)

// Client defines the interface for the Redis client used by the snapshot
// store. Trimmed to the handful of commands snapshot persistence actually
// issues — no hash, sorted-set, pub/sub, or stream commands, unlike the
// general-purpose client this package was adapted from.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=redis_mock
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
	Reconnect(ctx context.Context) bool

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) (int64, error)
}
