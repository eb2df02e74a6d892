package sampler

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTransport matches every failure of the HTTP exchange itself: connection
// errors, timeouts, unreadable or non-JSON bodies and non-2xx replies that do
// not carry an error message
var ErrTransport = errors.New("transport error")

// TransportError describes a failed exchange with the Komenco service
type TransportError struct {
	// Op is the step that failed, e.g. "post" or "decode response"
	Op string
	// StatusCode is the HTTP status, zero when no response was received
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("komenco %s failed (status: %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("komenco %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

//nolint:errorlint
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// RemoteError carries the message of an "error" field returned by the service
type RemoteError struct {
	Message    string
	StatusCode int
}

func (e *RemoteError) Error() string {
	return "komenco: " + e.Message
}
