package config

import (
	"testing"
)

func TestValidatorInstanceIsShared(t *testing.T) {
	if validatorInstance() != validatorInstance() {
		t.Error("validatorInstance should build the validator once")
	}
}

func TestBaseURLValidation(t *testing.T) {
	v := validatorInstance()

	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"empty string", "", false},
		{"space", " ", false},
		{"padded", " https://example.com", false},

		{"https", "https://auth.example.com", true},
		{"http with port", "http://192.168.10.249:8080", true},
		{"https with path prefix", "https://example.com/rizon", true},

		{"no host", "https:///path", false},
		{"empty host", "http://", false},
		{"ftp scheme", "ftp://example.com", false},
		{"no scheme", "example.com", false},
		{"query", "https://example.com?x=1", false},
		{"fragment", "https://example.com#top", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.url, "base_url")
			got := err == nil

			if got != tt.expected {
				t.Errorf("base_url validation for %q: got %v, want %v (err: %v)", tt.url, got, tt.expected, err)
			}
		})
	}
}
