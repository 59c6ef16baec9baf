package adapter

import (
	"errors"
	"fmt"
)

// TransportError wraps gateway failures: the provider was unreachable, timed
// out, returned an error status, or returned data that does not parse as a
// structured payload (Malformed). It is always safe to retry.
type TransportError struct {
	Status    int
	Malformed bool
	Err       error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "transport error"
	}
	if e.Malformed {
		if e.Err != nil {
			return fmt.Sprintf("malformed model response: %v", e.Err)
		}
		return "malformed model response"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("transport error (status=%d)", e.Status)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsTransport reports whether err is a gateway transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// transportErrf wraps a provider error as a TransportError.
func transportErrf(format string, args ...any) error {
	return &TransportError{Err: fmt.Errorf(format, args...)}
}
