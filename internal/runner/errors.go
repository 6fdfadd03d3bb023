package runner

import (
	"fmt"
)

// QueryError is returned when the billing query of a service fails.
type QueryError struct {
	Service string
	Err     error
}

func (q *QueryError) Error() string {
	return fmt.Sprintf("billing query for service %s failed: %s", q.Service, q.Err)
}

// Cause satisfies github.com/pkg/errors causer interface.
func (q *QueryError) Cause() error { return q.Err }

// Unwrap satisfies the standard library errors wrapper interface.
func (q *QueryError) Unwrap() error { return q.Err }

// EmitError is returned when a metric line could not be written.
type EmitError struct {
	Path string
	Err  error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("could not emit metric %s: %s", e.Path, e.Err)
}

// Cause satisfies github.com/pkg/errors causer interface.
func (e *EmitError) Cause() error { return e.Err }

// Unwrap satisfies the standard library errors wrapper interface.
func (e *EmitError) Unwrap() error { return e.Err }

// causeMessage returns the message of the direct cause of a run error, or the
// error message itself if it doesn't have a cause.
func causeMessage(err error) string {
	type causer interface {
		Cause() error
	}

	if c, ok := err.(causer); ok && c.Cause() != nil {
		return c.Cause().Error()
	}
	return err.Error()
}
