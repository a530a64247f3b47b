package mindicador

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeTimeout    ErrorType = "timeout"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeServer     ErrorType = "server"
	ErrorTypeClient     ErrorType = "client"
	ErrorTypeValidation ErrorType = "validation"
)

// FetchError describes why a series could not be retrieved. Retryable tells
// whether the same request may succeed later.
type FetchError struct {
	Type       ErrorType
	Retryable  bool
	StatusCode int
	Message    string
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("mindicador %s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("mindicador %s error: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("mindicador %s error: %s", e.Type, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func classifyTransportError(err error) *FetchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &FetchError{Type: ErrorTypeTimeout, Retryable: true, Message: "request timed out", Cause: err}
	}
	return &FetchError{Type: ErrorTypeNetwork, Retryable: true, Message: "request failed", Cause: err}
}

func classifyStatus(statusCode int, status string) *FetchError {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return &FetchError{Type: ErrorTypeRateLimit, Retryable: true, StatusCode: statusCode, Message: status}
	case statusCode >= 500:
		return &FetchError{Type: ErrorTypeServer, Retryable: true, StatusCode: statusCode, Message: status}
	default:
		return &FetchError{Type: ErrorTypeClient, StatusCode: statusCode, Message: status}
	}
}

func validationError(msg string, cause error) *FetchError {
	return &FetchError{Type: ErrorTypeValidation, Message: msg, Cause: cause}
}
