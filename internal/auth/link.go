package auth

import (
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rh-mithu/rizon-client/internal/logger"
	apperrors "github.com/rh-mithu/rizon-client/pkg/errors"
)

const (
	// LinkScheme is the custom URL scheme registered for login links.
	LinkScheme = "rizon"

	verifyHost = "auth"
	verifyPath = "/verify"
	tokenParam = "token"
)

// LoginLink is the decoded content of a login link. It is never stored.
type LoginLink struct {
	Token     string
	Subject   string
	ExpiresAt time.Time
}

// ParseLoginLink decodes raw, which is either a rizon://auth/verify?token=…
// link, an http(s) link whose path ends in /verify with a token query
// parameter, or the bare token. Claims are read without verifying the
// signature; the backend is the authority on the token itself.
func ParseLoginLink(raw string) (LoginLink, error) {
	return parseLoginLink(raw, time.Now())
}

func parseLoginLink(raw string, now time.Time) (LoginLink, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return LoginLink{}, apperrors.NewLinkError("link is empty", nil)
	}

	token, err := extractToken(raw)
	if err != nil {
		return LoginLink{}, err
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return LoginLink{}, apperrors.NewLinkError("token is malformed", err)
	}

	link := LoginLink{Token: token}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return LoginLink{}, apperrors.NewLinkError("token expiry is malformed", err)
	}
	if exp == nil {
		return LoginLink{}, apperrors.NewLinkError("token has no expiry", jwt.ErrTokenRequiredClaimMissing)
	}
	if !now.Before(exp.Time) {
		return LoginLink{}, apperrors.NewLinkError("link has expired", jwt.ErrTokenExpired)
	}
	link.ExpiresAt = exp.Time

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		link.Subject = sub
	} else if email, ok := claims["email"].(string); ok {
		link.Subject = email
	}

	return link, nil
}

func extractToken(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		if strings.Count(raw, ".") != 2 {
			return "", apperrors.NewLinkError("not a login link", nil)
		}
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", apperrors.NewLinkError("not a valid URL", err)
	}

	switch strings.ToLower(u.Scheme) {
	case LinkScheme:
		if !strings.EqualFold(u.Host, verifyHost) || strings.TrimRight(u.Path, "/") != verifyPath {
			return "", apperrors.NewLinkError("unsupported rizon link", nil)
		}
	case "http", "https":
		if !strings.HasSuffix(strings.TrimRight(u.Path, "/"), verifyPath) {
			return "", apperrors.NewLinkError("not a login link", nil)
		}
	default:
		return "", apperrors.NewLinkError("unsupported scheme "+u.Scheme, nil)
	}

	token := strings.TrimSpace(u.Query().Get(tokenParam))
	if token == "" {
		return "", apperrors.NewLinkError("token is missing", nil)
	}
	return token, nil
}

// LinkHandler completes sign-in from a login link.
type LinkHandler struct {
	session *Session
	logger  *logger.Logger
	now     func() time.Time
}

// NewLinkHandler binds a handler to session.
func NewLinkHandler(session *Session, log *logger.Logger) *LinkHandler {
	session.mustProvide()
	if log == nil {
		log = logger.Nop()
	}
	return &LinkHandler{
		session: session,
		logger:  log.WithFields(map[string]any{"component": "link_handler"}),
		now:     time.Now,
	}
}

// Handle parses raw and, when it is a usable login link, logs the session in.
func (h *LinkHandler) Handle(raw string) error {
	link, err := parseLoginLink(raw, h.now())
	if err != nil {
		h.logger.Warn(apperrors.UserMessage(err, "invalid login link"))
		return err
	}

	fields := map[string]any{}
	if link.Subject != "" {
		fields["subject"] = link.Subject
	}
	if !link.ExpiresAt.IsZero() {
		fields["expires_at"] = link.ExpiresAt.Format(time.RFC3339)
	}
	h.logger.WithFields(fields).Info("login link accepted")

	h.session.Login()
	return nil
}
