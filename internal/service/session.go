package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainsession "github.com/mergington/activities-ui/internal/domain/session"
	"github.com/mergington/activities-ui/internal/ports"
)

// SessionService is the single source of truth for "am I authenticated".
// It coordinates the in-memory Session with the persisted token. Only the
// token survives a reload; the teacher name and the authenticated flag are
// always re-derived via a probe, never persisted, so stale identity data is
// never trusted.
type SessionService struct {
	tokens ports.TokenStore
	logger *slog.Logger
}

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Tokens ports.TokenStore
	Logger *slog.Logger
}

// NewSessionService constructs a new SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		tokens: opts.Tokens,
		logger: logger,
	}
}

// Hydrate reads the persisted token (if any) into a fresh session. It makes
// no network call and never reports the session as authenticated; a probe
// settles that. Store failures degrade to the logged-out state.
func (s *SessionService) Hydrate(ctx context.Context, sid string) domainsession.Session {
	if sid == "" {
		return domainsession.LoggedOut()
	}

	token, err := s.tokens.Get(ctx, sid)
	if err != nil {
		if !errors.Is(err, ports.ErrTokenNotFound) {
			s.logger.WarnContext(ctx, "hydrate session failed", "error", err)
		}
		return domainsession.LoggedOut()
	}

	return domainsession.Hydrated(token)
}

// SetAuthenticated stores the token and teacher name, marks the session
// valid, and persists the token.
func (s *SessionService) SetAuthenticated(
	ctx context.Context,
	sid string,
	result ports.LoginResult,
) (domainsession.Session, error) {
	if sid == "" {
		return domainsession.LoggedOut(), errors.New("session id is required")
	}
	if result.AccessToken == "" || result.TeacherName == "" {
		return domainsession.LoggedOut(), errors.New("token and teacher name are required")
	}

	if err := s.tokens.Save(ctx, sid, result.AccessToken); err != nil {
		return domainsession.LoggedOut(), fmt.Errorf("persist token: %w", err)
	}

	return domainsession.Authenticated(result.AccessToken, result.TeacherName), nil
}

// Clear drops the token and name, marks the session invalid, and removes the
// persisted token.
func (s *SessionService) Clear(ctx context.Context, sid string) domainsession.Session {
	if sid == "" {
		return domainsession.LoggedOut()
	}

	if err := s.tokens.Delete(ctx, sid); err != nil {
		// The in-memory session still transitions to logged out; the orphaned
		// key expires via its TTL.
		s.logger.WarnContext(ctx, "clear persisted token failed", "error", err)
	}

	return domainsession.LoggedOut()
}
