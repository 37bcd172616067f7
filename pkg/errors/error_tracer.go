package errors

import "github.com/pkg/errors"

// ErrorTracer wraps an infrastructure failure (Kafka, Redis, snapshot codec)
// with a stable Message and a stack-traced cause, so logs show where the
// failure actually originated rather than just where it was last returned.
type ErrorTracer struct {
	Message string
	Err     error
}

// NewTracer creates a bare ErrorTracer with no cause attached yet.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{Message: message}
}

// TracerFromError wraps err, capturing a stack trace if err doesn't already
// carry one.
func TracerFromError(err error) *ErrorTracer {
	tracer := NewTracer(err.Error())
	tracer.Err = err
	if _, ok := err.(StackTracer); !ok {
		tracer.Err = errors.WithStack(err)
	}
	return tracer
}

// StackTracer is implemented by errors that can report their own call stack.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

func (e *ErrorTracer) Error() string {
	return e.Message
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap attaches err as the cause, capturing a stack trace if needed.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	e.Err = err
	if _, ok := err.(StackTracer); !ok {
		e.Err = errors.WithStack(err)
	}
	return e
}

// StackTrace returns the cause's stack trace, if it has one.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if errWithStack, ok := e.Unwrap().(StackTracer); ok {
		return errWithStack.StackTrace()
	}
	return nil
}
