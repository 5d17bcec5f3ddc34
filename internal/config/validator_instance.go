package config

import (
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the package validator with the base_url rule registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("base_url", func(fl validator.FieldLevel) bool {
			return isBaseURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isBaseURL accepts absolute http(s) origins with a host and no query or fragment.
func isBaseURL(raw string) bool {
	if strings.TrimSpace(raw) == "" || raw != strings.TrimSpace(raw) {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	return parsed.RawQuery == "" && parsed.Fragment == ""
}
