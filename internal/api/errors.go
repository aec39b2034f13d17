package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call.
type Kind int

const (
	// KindNetwork: the request never completed (DNS, refused, timeout).
	KindNetwork Kind = iota + 1
	// KindAuth: the server rejected the bearer token (401/403).
	KindAuth
	// KindValidation: the server rejected the input (other 4xx).
	KindValidation
	// KindServer: 5xx, or a success body that didn't decode.
	KindServer
)

// Error is the one error type the client returns for failed calls.
type Error struct {
	Kind       Kind
	StatusCode int // 0 when the request never got a response
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// IsAuth reports whether err is an authorization failure, i.e. the
// stored token is no longer good.
func IsAuth(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == KindAuth
}

// Message extracts the human-readable message for display, falling back
// to a generic one.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return "something went wrong, please try again"
}
