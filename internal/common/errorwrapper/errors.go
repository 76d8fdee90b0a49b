package errorwrapper

import (
	"errors"
	"fmt"
)

// Error kinds raised while building or sending webhook messages.
// Concrete errors wrap one of these so callers can use errors.Is.
var (
	// ErrInvalidColor indicates a color that is not hex-parseable or outside [0, 2^24)
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidTimestamp indicates a timestamp string that is not ISO-8601
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrInvalidTimestampStyle indicates an unknown markdown timestamp style
	ErrInvalidTimestampStyle = errors.New("invalid timestamp style")
	// ErrIndexOutOfRange indicates a removal index outside the collection
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidField indicates an embed field missing its name or value
	ErrInvalidField = errors.New("invalid embed field")
	// ErrInvalidFieldType indicates an embed field member with the wrong type
	ErrInvalidFieldType = errors.New("invalid embed field type")
	// ErrInvalidComponent indicates a button or select menu breaking its invariants
	ErrInvalidComponent = errors.New("invalid component")
	// ErrInvalidWebhookURL indicates a webhook URL without id and token segments
	ErrInvalidWebhookURL = errors.New("invalid webhook url")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
	Kind    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Unwrap exposes the error kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewKindError creates a validation error that unwraps to kind
func NewKindError(kind error, field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Kind:    kind,
	}
}

// NetworkError represents network-related errors
type NetworkError struct {
	URL     string
	Reason  string
	Wrapped error
}

func (e *NetworkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("network error for URL '%s': %s: %v", e.URL, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("network error for URL '%s': %s", e.URL, e.Reason)
}

func (e *NetworkError) Unwrap() error {
	return e.Wrapped
}

// NewNetworkError creates a new network error
func NewNetworkError(url, reason string, wrapped error) *NetworkError {
	return &NetworkError{
		URL:     url,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// HTTPError represents a non-2xx response from the remote service.
type HTTPError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *HTTPError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("HTTP %d error for URL '%s': %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("HTTP %d error: %s", e.StatusCode, e.Body)
}

// NewHTTPErrorWithURL creates a new HTTP error with URL context
func NewHTTPErrorWithURL(statusCode int, body, url string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Body:       body,
		URL:        url,
	}
}

// IsTransportError reports whether err came from the HTTP layer, either a
// non-2xx status or a network fault.
func IsTransportError(err error) bool {
	var httpErr *HTTPError
	var netErr *NetworkError
	return errors.As(err, &httpErr) || errors.As(err, &netErr)
}
