package config

// DefaultBaseURL is the backend origin baked in at build time:
//
//	go build -ldflags "-X github.com/rh-mithu/rizon-client/internal/config.DefaultBaseURL=https://api.example.com"
var DefaultBaseURL = "http://localhost:8080"

const (
	// DefaultRequestLinkPath is the backend route that emails a login link.
	DefaultRequestLinkPath = "/api/v1/auth/request-link"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config represents the full client configuration document.
type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
	UI  UIConfig  `yaml:"ui"`
}

// APIConfig locates the authentication backend.
type APIConfig struct {
	BaseURL         string `yaml:"base_url" validate:"required,base_url"`
	RequestLinkPath string `yaml:"request_link_path" validate:"required,startswith=/"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
	File          string `yaml:"file,omitempty"`
}

// UIConfig selects presentation options for the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme" validate:"required,oneof=dark light"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:         DefaultBaseURL,
			RequestLinkPath: DefaultRequestLinkPath,
		},
		Log: LogConfig{
			Level:         "info",
			HumanReadable: true,
		},
		UI: UIConfig{
			Theme: ThemeDark,
		},
	}
}
