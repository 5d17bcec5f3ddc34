package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures input or configuration validation issues detected
// locally, before any network call is made.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RequestKind classifies why a backend request failed.
type RequestKind int

const (
	// KindTransport means the HTTP exchange never completed (DNS, refused, reset).
	KindTransport RequestKind = iota
	// KindApplication means the server answered with a non-2xx status.
	KindApplication
)

func (k RequestKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// RequestError is the single error type surfaced by the API client. Its
// Error() text is the human-readable message meant for the user; the
// underlying cause stays reachable through Unwrap for diagnostics.
type RequestError struct {
	Kind    RequestKind
	Status  int
	Message string
	Err     error
}

// NewRequestError constructs a RequestError.
func NewRequestError(kind RequestKind, status int, message string, err error) error {
	return &RequestError{Kind: kind, Status: status, Message: message, Err: err}
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap exposes the underlying error.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LinkError reports a login link that cannot complete sign-in.
type LinkError struct {
	Reason string
	Err    error
}

// NewLinkError constructs a LinkError.
func NewLinkError(reason string, err error) error {
	return &LinkError{Reason: reason, Err: err}
}

func (e *LinkError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid login link: %s", e.Reason)
}

// Unwrap exposes the underlying error.
func (e *LinkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UserMessage returns the text a screen should present for err. Validation
// and request errors carry their own message; anything else falls back.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if stdErrors.As(err, &validationErr) && strings.TrimSpace(validationErr.Message) != "" {
		return validationErr.Message
	}

	var requestErr *RequestError
	if stdErrors.As(err, &requestErr) && strings.TrimSpace(requestErr.Message) != "" {
		return requestErr.Message
	}

	var linkErr *LinkError
	if stdErrors.As(err, &linkErr) {
		return linkErr.Error()
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
