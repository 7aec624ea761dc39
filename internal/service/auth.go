package service

import (
	"context"
	"fmt"
	"log/slog"

	domainsession "github.com/mergington/activities-ui/internal/domain/session"
	"github.com/mergington/activities-ui/internal/ports"
)

// AuthService is the auth gateway: it translates session state into backend
// requests (login, logout, session probe) and updates the session from the
// responses.
//
// Session validity state machine:
//
//	LOGGED_OUT --login success--> LOGGED_IN
//	LOGGED_OUT --probe success--> LOGGED_IN
//	LOGGED_IN  --logout--> LOGGED_OUT
//	LOGGED_IN  --probe failure / 401 on any request--> LOGGED_OUT
type AuthService struct {
	backend  ports.Backend
	sessions *SessionService
	logger   *slog.Logger
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Backend  ports.Backend
	Sessions *SessionService
	Logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		backend:  opts.Backend,
		sessions: opts.Sessions,
		logger:   logger,
	}
}

// ProbeSession validates the persisted token against the backend. With no
// token present it resolves immediately to logged out without touching the
// network. On any failure (transport error, non-success status, or an
// "authenticated: false" body) it clears the session. It never returns an
// error; failures degrade to the logged-out state.
func (s *AuthService) ProbeSession(ctx context.Context, sid string) domainsession.Session {
	sess := s.sessions.Hydrate(ctx, sid)
	if !sess.HasToken() {
		return domainsession.LoggedOut()
	}

	result, err := s.backend.Probe(ctx, sess.Token)
	if err != nil {
		s.logger.WarnContext(ctx, "session probe failed", "error", err)
		return s.sessions.Clear(ctx, sid)
	}
	if !result.Authenticated {
		return s.sessions.Clear(ctx, sid)
	}

	return domainsession.Authenticated(sess.Token, result.TeacherName)
}

// LoginInput groups parameters for a login attempt.
type LoginInput struct {
	SID      string
	Username string
	Password string
}

// Login posts credentials to the backend. On success the session becomes
// authenticated and the token is persisted. On failure the error carries the
// server-provided detail and the session is left untouched.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (domainsession.Session, error) {
	result, err := s.backend.Login(ctx, in.Username, in.Password)
	if err != nil {
		return domainsession.LoggedOut(), fmt.Errorf("login: %w", err)
	}

	sess, err := s.sessions.SetAuthenticated(ctx, in.SID, result)
	if err != nil {
		return domainsession.LoggedOut(), fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Logout clears the session locally. Bearer tokens are stateless, so no
// backend call is required.
func (s *AuthService) Logout(ctx context.Context, sid string) domainsession.Session {
	return s.sessions.Clear(ctx, sid)
}
