package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/rh-mithu/rizon-client/pkg/errors"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

func noEnv(string) (string, bool) { return "", false }

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(LoadOptions{EnvFile: filepath.Join(dir, "missing.env"), LookupEnv: noEnv})
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	require.Equal(t, DefaultRequestLinkPath, cfg.API.RequestLinkPath)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, ThemeDark, cfg.UI.Theme)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", `api:
  base_url: "https://auth.example.com"
log:
  level: debug
  file: /tmp/rizon.log
ui:
  theme: light
`)

	cfg, err := Load(LoadOptions{Path: path, EnvFile: filepath.Join(dir, "missing.env"), LookupEnv: noEnv})
	require.NoError(t, err)
	require.Equal(t, "https://auth.example.com", cfg.API.BaseURL)
	require.Equal(t, DefaultRequestLinkPath, cfg.API.RequestLinkPath, "unset keys keep defaults")
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/rizon.log", cfg.Log.File)
	require.Equal(t, ThemeLight, cfg.UI.Theme)
}

func TestLoadUsesPerUserConfigWhenPresent(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, filepath.Join("xdg", "rizon", "config.yaml"), "ui:\n  theme: light\n")

	cfg, err := Load(LoadOptions{EnvFile: filepath.Join(dir, "missing.env"), LookupEnv: noEnv})
	require.NoError(t, err)
	require.Equal(t, ThemeLight, cfg.UI.Theme)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	dir := isolate(t)

	_, err := Load(LoadOptions{Path: filepath.Join(dir, "nope.yaml"), LookupEnv: noEnv})
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadInvalidYAMLReportsLine(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", "api:\n  base_url: [\n")

	_, err := Load(LoadOptions{Path: path, LookupEnv: noEnv})
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestLoadDotenvAndEnvironmentPrecedence(t *testing.T) {
	dir := isolate(t)
	envFile := writeFile(t, dir, ".env", "RIZON_API_URL=https://dotenv.example.com/\nRIZON_THEME=light\n")

	env := map[string]string{EnvAPIURL: "https://env.example.com"}
	cfg, err := Load(LoadOptions{
		EnvFile: envFile,
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	})
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.API.BaseURL, "process env wins over dotenv")
	require.Equal(t, ThemeLight, cfg.UI.Theme, "dotenv applies when env is unset")
}

func TestLoadTrimsTrailingSlashFromEnvURL(t *testing.T) {
	dir := isolate(t)
	envFile := writeFile(t, dir, ".env", "RIZON_API_URL=https://dotenv.example.com/\n")

	cfg, err := Load(LoadOptions{EnvFile: envFile, LookupEnv: noEnv})
	require.NoError(t, err)
	require.Equal(t, "https://dotenv.example.com", cfg.API.BaseURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)

	cases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{"bad url", map[string]string{EnvAPIURL: "ftp://example.com"}, "api.base_url"},
		{"bad level", map[string]string{EnvLogLevel: "chatty"}, "log.level"},
		{"bad theme", map[string]string{EnvTheme: "neon"}, "ui.theme"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(LoadOptions{
				EnvFile: filepath.Join(dir, "missing.env"),
				LookupEnv: func(key string) (string, bool) {
					v, ok := tc.env[key]
					return v, ok
				},
			})
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	err := ValidateConfig(nil)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "config", validationErr.Field)
}
