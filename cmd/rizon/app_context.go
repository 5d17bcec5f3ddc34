package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rh-mithu/rizon-client/internal/api"
	"github.com/rh-mithu/rizon-client/internal/auth"
	"github.com/rh-mithu/rizon-client/internal/config"
	"github.com/rh-mithu/rizon-client/internal/logger"
	"github.com/rh-mithu/rizon-client/internal/ui/components"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Client  *api.Client
	Session *auth.Session
	Links   *auth.LinkHandler
	Theme   components.Theme

	closers []io.Closer
}

// newAppContext loads configuration, applies flag overrides and wires the
// services. A nil logOut sends logs to the configured file, or nowhere.
func newAppContext(flags *rootFlags, logOut io.Writer) (*AppContext, error) {
	cfg, err := config.Load(config.LoadOptions{Path: flags.configPath})
	if err != nil {
		return nil, newCommandError("load configuration", configSource(flags.configPath), err,
			"Fix the config file or the RIZON_* environment variables")
	}

	applyFlagOverrides(cfg, flags)
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, newCommandError("load configuration", "command line flags", err,
			"Check --api-url and --log-level")
	}

	app := &AppContext{Config: cfg}

	writer := logOut
	if writer == nil {
		writer = io.Discard
		if cfg.Log.File != "" {
			file, err := openLogFile(cfg.Log.File)
			if err != nil {
				return nil, newCommandError("open log file", cfg.Log.File, err,
					"Point log.file or RIZON_LOG_FILE at a writable path")
			}
			app.closers = append(app.closers, file)
			writer = file
		}
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable && logOut != nil,
		Writer:        writer,
	})
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Logger = log

	client, err := api.New(api.Options{
		BaseURL:         cfg.API.BaseURL,
		RequestLinkPath: cfg.API.RequestLinkPath,
		Logger:          log,
		UserAgent:       "rizon/" + version,
	})
	if err != nil {
		_ = app.Close()
		return nil, newCommandError("create API client", cfg.API.BaseURL, err, "Check --api-url")
	}
	app.Client = client

	app.Session = auth.NewSession(client)
	app.Links = auth.NewLinkHandler(app.Session, log)

	theme, ok := components.ThemeByName(cfg.UI.Theme)
	if !ok {
		theme = components.DefaultTheme()
	}
	app.Theme = theme

	log.WithFields(map[string]any{
		"api_url": client.RequestLinkURL(),
		"theme":   theme.Name,
	}).Debug("application context ready")

	return app, nil
}

// Close releases resources such as the log file.
func (a *AppContext) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func applyFlagOverrides(cfg *config.Config, flags *rootFlags) {
	if url := strings.TrimSpace(flags.apiURL); url != "" {
		cfg.API.BaseURL = strings.TrimRight(url, "/")
	}
	if level := strings.TrimSpace(flags.logLevel); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

func configSource(path string) string {
	if path == "" {
		return "defaults and environment"
	}
	return fmt.Sprintf("config file %s", path)
}
