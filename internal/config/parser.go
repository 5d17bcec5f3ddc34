package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/rh-mithu/rizon-client/pkg/errors"
)

const (
	EnvAPIURL   = "RIZON_API_URL"
	EnvLogLevel = "RIZON_LOG_LEVEL"
	EnvLogFile  = "RIZON_LOG_FILE"
	EnvTheme    = "RIZON_THEME"

	defaultEnvFile = ".env"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOptions controls where Load looks for overrides.
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// EnvFile is a dotenv file read for RIZON_* keys. Defaults to ".env";
	// a missing file is ignored.
	EnvFile string
	// LookupEnv reads the process environment. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load builds the effective configuration: defaults, then the YAML file, then
// the dotenv file, then the process environment. The result is validated.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path, explicit, err := resolveConfigPath(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := overlayFile(cfg, path, explicit); err != nil {
			return nil, err
		}
	}

	dotenv, err := readDotenv(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	applyEnv(cfg, func(key string) (string, bool) {
		if value, ok := lookup(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	})

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rizon", "config.yaml"), nil
}

func resolveConfigPath(explicit string) (string, bool, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, true, nil
	}

	path, err := DefaultPath()
	if err != nil {
		// No resolvable config dir means no per-user file.
		return "", false, nil
	}
	if _, err := os.Stat(path); err != nil {
		return "", false, nil
	}
	return path, false, nil
}

func overlayFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.NewParseError(path, extractLine(err), err)
	}

	return nil
}

func readDotenv(path string) (map[string]string, error) {
	if path == "" {
		path = defaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, apperrors.NewParseError(path, 0, fmt.Errorf("read dotenv: %w", err))
	}
	return values, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if value, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(value) != "" {
		cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(value), "/")
	}
	if value, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(value))
	}
	if value, ok := lookup(EnvLogFile); ok {
		cfg.Log.File = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvTheme); ok && strings.TrimSpace(value) != "" {
		cfg.UI.Theme = strings.ToLower(strings.TrimSpace(value))
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
