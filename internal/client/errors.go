package client

import (
	"context"
	"errors"
	"fmt"
)

// NetworkError means no usable response was received: DNS failure,
// connection refused, client timeout. Callers show a connectivity
// message instead of a server message for this kind.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError means the backend answered with a non-2xx status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// NotFoundError means the backend answered 404 for a single-item operation.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Path)
}

// ValidationError means caller-supplied parameters failed a local
// precondition check; the request never reached the transport.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Message
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsCanceled reports whether err comes from the caller's cancellation
// token rather than from the transport or the backend. A client-side
// timeout also carries a deadline error but is wrapped as NetworkError,
// so the two kinds stay disjoint.
func IsCanceled(err error) bool {
	if IsNetwork(err) {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
