// Package errors provides the ambient error vocabulary used outside the
// matching engine core: infrastructure failures (Kafka, Redis, snapshot
// codec) and malformed-intent rejection at the wire boundary. The core
// itself (internal/domain/orderbook) never imports this package — per
// spec.md §7 its control intents fail with a plain bool, nothing more.
package errors

// Code identifies a specific class of ambient (non-core) failure.
type Code string

const (
	// CodeIntentDecode marks a wire-format intent that failed to decode
	// before it ever reached Engine.Submit.
	CodeIntentDecode Code = "intent_decode_error"
	// CodeIntentInvalid marks a decoded intent rejected by boundary
	// validation (unknown side, unknown order type, or missing order id).
	// Quantity and price are not validated.
	CodeIntentInvalid Code = "intent_invalid"

	// CodeKafkaRead marks a failure reading an intent off the ingress topic.
	CodeKafkaRead Code = "kafka_read_error"
	// CodeKafkaWrite marks a failure publishing a trade to the egress topic.
	CodeKafkaWrite Code = "kafka_write_error"

	// CodeRedisConfig marks an invalid or incomplete Redis configuration.
	CodeRedisConfig     Code = "redis_config_error"
	CodeRedisConnect    Code = "redis_connection_error"
	CodeRedisDisconnect Code = "redis_disconnection_error"
	CodeRedisPing       Code = "redis_ping_error"
	CodeRedisGet        Code = "redis_get_error"
	CodeRedisSet        Code = "redis_set_error"
	CodeRedisDel        Code = "redis_del_error"

	// CodeSnapshotCodec marks a snapshot (de)serialization failure.
	CodeSnapshotCodec Code = "snapshot_codec_error"
)

// Details carries a user-facing message, a Code, and the field it relates
// to, if any. It implements the error interface directly.
type Details struct {
	Message string
	Code    Code
	Field   string
}

// New builds a Details error.
func New(code Code, message, field string) *Details {
	return &Details{Message: message, Code: code, Field: field}
}

func (e *Details) Error() string {
	return e.Message
}

// CodeEquals reports whether err is a *Details carrying the given code.
func CodeEquals(err error, code Code) bool {
	d, ok := err.(*Details)
	return ok && d.Code == code
}
