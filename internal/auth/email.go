package auth

import (
	"strings"

	apperrors "github.com/rh-mithu/rizon-client/pkg/errors"
)

// EmptyEmailMessage is shown when a login link is requested without an address.
const EmptyEmailMessage = "Please enter your email address"

// ValidateEmail rejects a blank address before any network call. Everything
// else is left to the backend.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email", EmptyEmailMessage, nil)
	}
	return nil
}
