package pfapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuth marks failures to obtain an access token.
	ErrAuth = errors.New("cannot authenticate")
	// ErrRateLimited marks HTTP 429 responses.
	ErrRateLimited = errors.New("rate limited")
	// ErrRequestFailed marks any other unsuccessful response.
	ErrRequestFailed = errors.New("request failed")
	// ErrTransport marks network level failures.
	ErrTransport = errors.New("transport failure")
	// ErrMissingCredentials is returned when the endpoint, key or secret is blank.
	ErrMissingCredentials = errors.New("api credentials are not configured")
)

// AuthError reports a failed token request.
type AuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *AuthError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrAuth, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: token endpoint returned %d", ErrAuth, e.Status)
	}
	return ErrAuth.Error()
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// StatusError reports a non-200 response from a data endpoint.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Status == http.StatusTooManyRequests {
		return fmt.Sprintf("%s: %s", ErrRateLimited, e.Path)
	}
	return fmt.Sprintf("%s: %s returned %d", ErrRequestFailed, e.Path, e.Status)
}

func (e *StatusError) Is(target error) bool {
	if e.Status == http.StatusTooManyRequests {
		return target == ErrRateLimited
	}
	return target == ErrRequestFailed
}

// TransportError reports DNS, connection or timeout failures.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrTransport, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ErrorKind is a transport-neutral error category.
type ErrorKind string

const (
	ErrorKindNone          ErrorKind = ""
	ErrorKindAuth          ErrorKind = "auth"
	ErrorKindRateLimited   ErrorKind = "rate_limited"
	ErrorKindRequestFailed ErrorKind = "request_failed"
	ErrorKindTransport     ErrorKind = "transport"
	ErrorKindUnknown       ErrorKind = "unknown"
)

// Classify maps client errors to an ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrAuth), errors.Is(err, ErrMissingCredentials):
		return ErrorKindAuth
	case errors.Is(err, ErrRateLimited):
		return ErrorKindRateLimited
	case errors.Is(err, ErrTransport):
		return ErrorKindTransport
	case errors.Is(err, ErrRequestFailed):
		return ErrorKindRequestFailed
	default:
		return ErrorKindUnknown
	}
}
