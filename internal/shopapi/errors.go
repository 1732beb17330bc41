package shopapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrorKind classifies an API failure so callers can branch without string
// matching.
type ErrorKind int

const (
	// KindUnknown covers failures that fit no other kind (bad JSON, unexpected
	// status codes).
	KindUnknown ErrorKind = iota
	// KindNotFound means the requested entity does not exist.
	KindNotFound
	// KindTransport means the request never completed (connectivity, timeout)
	// or the server answered with a 5xx.
	KindTransport
	// KindValidation means the input was rejected, either locally (oversized
	// upload) or by the server (4xx on a mutating call).
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindTransport:
		return "transport"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all Client methods.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("shop API: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("shop API: %s: %s", e.Kind, e.Message)
}

// IsNotFound reports whether err is a not-found API error.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsValidation reports whether err is a validation API error.
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindValidation
}

// statusError maps a non-2xx response into a typed error. The server reports
// failures either as {"error": "..."} or {"message": "..."}; fall back to the
// raw body when it is neither.
func statusError(body []byte, statusCode int) *Error {
	msg := gjson.GetBytes(body, "error").String()
	if msg == "" {
		msg = gjson.GetBytes(body, "message").String()
	}
	if msg == "" {
		msg = string(body)
	}

	kind := KindUnknown
	switch {
	case statusCode == http.StatusNotFound:
		kind = KindNotFound
	case statusCode >= 500:
		kind = KindTransport
	case statusCode >= 400:
		kind = KindValidation
	}

	return &Error{Kind: kind, StatusCode: statusCode, Message: msg}
}
