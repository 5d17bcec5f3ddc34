package main

import (
	"errors"
	"fmt"

	apperrors "github.com/rh-mithu/rizon-client/pkg/errors"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// requestSuggestion picks a hint from the kind of request failure.
func requestSuggestion(err error, baseURL string) string {
	var requestErr *apperrors.RequestError
	if errors.As(err, &requestErr) && requestErr.Kind == apperrors.KindTransport {
		return fmt.Sprintf("Check that the API at %s is reachable, or override it with --api-url", baseURL)
	}
	return "Check the email address and try again"
}
