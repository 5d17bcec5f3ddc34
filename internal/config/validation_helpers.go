package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/rh-mithu/rizon-client/pkg/errors"
)

var yamlFieldNames = map[string]string{
	"config":          "",
	"api":             "api",
	"baseurl":         "base_url",
	"requestlinkpath": "request_link_path",
	"log":             "log",
	"level":           "level",
	"file":            "file",
	"ui":              "ui",
	"theme":           "theme",
}

// convertValidationError normalizes validator errors into validation errors
// named the way the YAML document names them.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	var named []string
	for _, part := range parts {
		lowered := strings.ToLower(part)
		if mapped, ok := yamlFieldNames[lowered]; ok {
			if mapped != "" {
				named = append(named, mapped)
			}
			continue
		}
		named = append(named, lowered)
	}
	return strings.Join(named, ".")
}
