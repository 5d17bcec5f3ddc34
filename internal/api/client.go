// Package api is the HTTP client for the rizon authentication backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/rh-mithu/rizon-client/internal/logger"
	apperrors "github.com/rh-mithu/rizon-client/pkg/errors"
)

const (
	// DefaultErrorMessage is shown when a failed response carries no usable text.
	DefaultErrorMessage = "Failed to request login link"
	// UnexpectedErrorMessage is shown when a transport failure has no text of its own.
	UnexpectedErrorMessage = "An unexpected error occurred"

	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// Options configures a Client.
type Options struct {
	BaseURL         string
	RequestLinkPath string
	HTTPClient      *http.Client
	Logger          *logger.Logger
	UserAgent       string
}

// Client represents an HTTP client for the rizon API
type Client struct {
	baseURL         string
	requestLinkPath string
	httpClient      *http.Client
	logger          *logger.Logger
	userAgent       string
}

// LoginLinkRequest represents the request-link body
type LoginLinkRequest struct {
	Email string `json:"email"`
}

// New creates a new API client
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	parsed, err := url.Parse(base)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}

	path := opts.RequestLinkPath
	if path == "" {
		path = "/api/v1/auth/request-link"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "rizon-client"
	}

	return &Client{
		baseURL:         base,
		requestLinkPath: path,
		httpClient:      httpClient,
		logger:          log.WithFields(map[string]any{"component": "api"}),
		userAgent:       userAgent,
	}, nil
}

// RequestLinkURL returns the absolute URL the login-link request is sent to.
func (c *Client) RequestLinkURL() string {
	return c.baseURL + c.requestLinkPath
}

// RequestLoginLink asks the backend to email a one-time login link to email.
// The address is sent as given. Any 2xx status is success and the body is
// ignored. Every failure is logged and returned as *errors.RequestError whose
// message is the one to show the user. There is exactly one attempt.
func (c *Client) RequestLoginLink(ctx context.Context, email string) error {
	requestID := uuid.NewString()
	log := c.logger.WithContext(ctx).WithFields(map[string]any{
		"operation":  "request_link",
		"request_id": requestID,
	})

	jsonData, err := json.Marshal(LoginLinkRequest{Email: email})
	if err != nil {
		log.Error(err, "failed to marshal request")
		return apperrors.NewRequestError(apperrors.KindTransport, 0, UnexpectedErrorMessage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.RequestLinkURL(), bytes.NewReader(jsonData))
	if err != nil {
		log.Error(err, "failed to create request")
		return apperrors.NewRequestError(apperrors.KindTransport, 0, transportMessage(err), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	log.Debug("requesting login link")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(err, "failed to send request")
		return apperrors.NewRequestError(apperrors.KindTransport, 0, transportMessage(err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		log.Debug("login link requested")
		return nil
	}

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody+1))
	message := DefaultErrorMessage
	if len(body) <= maxErrorBody {
		message = ResolveErrorMessage(body)
	}
	cause := fmt.Errorf("request-link returned status %d", resp.StatusCode)
	if readErr != nil {
		cause = fmt.Errorf("%w (reading body: %v)", cause, readErr)
	}

	log.WithFields(map[string]any{"status": resp.StatusCode}).Error(cause, "login link request rejected")
	return apperrors.NewRequestError(apperrors.KindApplication, resp.StatusCode, message, cause)
}

// ResolveErrorMessage extracts the user-facing message from a failure body.
// A JSON object yields its "message", then its "error", when either is a
// non-blank string. Any other JSON yields the default. Text that is not JSON
// is shown as is.
func ResolveErrorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return DefaultErrorMessage
	}
	if !json.Valid([]byte(text)) {
		return text
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return DefaultErrorMessage
	}
	for _, key := range []string{"message", "error"} {
		if value, ok := fields[key].(string); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return DefaultErrorMessage
}

func transportMessage(err error) string {
	if err == nil {
		return UnexpectedErrorMessage
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return UnexpectedErrorMessage
}
