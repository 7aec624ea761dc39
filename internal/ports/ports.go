package ports

// Package ports defines interfaces (hexagonal ports) for session persistence
// and the activities backend. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	"github.com/mergington/activities-ui/internal/domain/model"
)

// ErrTokenNotFound is returned by TokenStore.Get when no token is persisted
// for the browser session.
type tokenNotFoundError struct{}

func (tokenNotFoundError) Error() string { return "auth token not found" }

// ErrTokenNotFound is the sentinel for a missing persisted token.
var ErrTokenNotFound error = tokenNotFoundError{}

// TokenStore persists the opaque bearer token across page reloads, keyed by
// the opaque browser session id. The token is the only session state that
// survives a reload; teacher identity is always re-derived via a probe.
type TokenStore interface {
	Save(ctx context.Context, sid, token string) error
	Get(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

// LoginResult carries the credential issued by a successful backend login.
type LoginResult struct {
	AccessToken string
	TeacherName string
}

// ProbeResult is the backend's verdict on an existing token.
type ProbeResult struct {
	Authenticated bool
	TeacherName   string
}

// RegistrationInput groups parameters for a signup or unregister call.
type RegistrationInput struct {
	Token    string
	Activity string
	Email    string
}

// Backend is the activities REST backend consumed by this frontend.
// Implementations translate failures into the internal/errors taxonomy:
// transport for unreachable-backend, unauthorized for 401-class rejections,
// and validation/not_found carrying the server-provided detail.
type Backend interface {
	// ListActivities fetches the current activity snapshot. Requires no auth.
	ListActivities(ctx context.Context) (model.ActivityList, error)

	// Login exchanges form-encoded credentials for a bearer token.
	Login(ctx context.Context, username, password string) (LoginResult, error)

	// Probe validates an existing token without performing a state change.
	Probe(ctx context.Context, token string) (ProbeResult, error)

	// Signup registers a student for an activity. Returns the server message.
	Signup(ctx context.Context, in RegistrationInput) (string, error)

	// Unregister removes a student from an activity. Returns the server message.
	Unregister(ctx context.Context, in RegistrationInput) (string, error)
}
