package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mergington/activities-ui/internal/domain/model"
	domainsession "github.com/mergington/activities-ui/internal/domain/session"
	apperrors "github.com/mergington/activities-ui/internal/errors"
	"github.com/mergington/activities-ui/internal/ports"
)

// MessageKind selects the styling of a transient status message.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Local (no-network) and fallback messages, kept from the original client.
const (
	msgSignupAuthRequired     = "Please log in as a teacher to register students."
	msgUnregisterAuthRequired = "Please log in as a teacher to manage registrations."
	msgSignupFailed           = "Failed to register student. Please try again."
	msgUnregisterFailed       = "Failed to unregister. Please try again."
)

// DispatchInput groups parameters for a signup or unregister action.
type DispatchInput struct {
	SID      string
	Session  domainsession.Session
	Activity string
	Email    string
}

// DispatchResult reports the outcome of a user action: the transient status
// message, whether the activity snapshot was refreshed (and the snapshot
// itself), and whether the action forced a transition to logged out.
type DispatchResult struct {
	Message    string
	Kind       MessageKind
	Activities model.ActivityList
	Refreshed  bool
	LoggedOut  bool
}

// DispatcherService handles user-initiated mutations. It enforces the
// authorization gate before issuing any request and triggers a snapshot
// refresh on completion of a successful mutation.
type DispatcherService struct {
	backend  ports.Backend
	sessions *SessionService
	logger   *slog.Logger
}

// DispatcherServiceOptions groups dependencies for DispatcherService.
type DispatcherServiceOptions struct {
	Backend  ports.Backend
	Sessions *SessionService
	Logger   *slog.Logger
}

// NewDispatcherService constructs a new DispatcherService.
func NewDispatcherService(opts DispatcherServiceOptions) *DispatcherService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DispatcherService{
		backend:  opts.Backend,
		sessions: opts.Sessions,
		logger:   logger,
	}
}

// Refresh refetches the activity snapshot. It is deliberately its own
// operation: the dispatcher calls it after successful mutations and the
// page handlers call it on render, so tests can count refreshes.
func (d *DispatcherService) Refresh(ctx context.Context) (model.ActivityList, error) {
	list, err := d.backend.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh activities: %w", err)
	}
	return list, nil
}

// Signup registers a student for an activity.
func (d *DispatcherService) Signup(ctx context.Context, in DispatchInput) DispatchResult {
	return d.dispatch(ctx, in, mutationSpec{
		action:       "signup",
		authRequired: msgSignupAuthRequired,
		fallback:     msgSignupFailed,
		call:         d.backend.Signup,
	})
}

// Unregister removes a student from an activity.
func (d *DispatcherService) Unregister(ctx context.Context, in DispatchInput) DispatchResult {
	return d.dispatch(ctx, in, mutationSpec{
		action:       "unregister",
		authRequired: msgUnregisterAuthRequired,
		fallback:     msgUnregisterFailed,
		call:         d.backend.Unregister,
	})
}

// mutationSpec binds one backend mutation to its user-facing messages.
type mutationSpec struct {
	action       string
	authRequired string
	fallback     string
	call         func(context.Context, ports.RegistrationInput) (string, error)
}

func (d *DispatcherService) dispatch(ctx context.Context, in DispatchInput, spec mutationSpec) DispatchResult {
	// Authorization gate: without a credential the action is rejected
	// locally and no request is issued.
	if !in.Session.HasToken() {
		return DispatchResult{Message: spec.authRequired, Kind: MessageError}
	}

	message, err := spec.call(ctx, ports.RegistrationInput{
		Token:    in.Session.Token,
		Activity: in.Activity,
		Email:    in.Email,
	})
	if err != nil {
		return d.dispatchFailure(ctx, in, spec, err)
	}

	result := DispatchResult{Message: message, Kind: MessageSuccess}

	// Refresh the snapshot so the rendered view reflects server truth.
	list, refreshErr := d.Refresh(ctx)
	if refreshErr != nil {
		d.logger.WarnContext(ctx, "refresh after mutation failed",
			"action", spec.action, "error", refreshErr)
		return result
	}
	result.Activities = list
	result.Refreshed = true
	return result
}

// dispatchFailure surfaces the server error message without refreshing. A
// 401-class rejection also forces the session back to logged out.
func (d *DispatcherService) dispatchFailure(
	ctx context.Context,
	in DispatchInput,
	spec mutationSpec,
	err error,
) DispatchResult {
	d.logger.WarnContext(ctx, "dispatch failed", "action", spec.action, "error", err)

	result := DispatchResult{
		Message: apperrors.UserMessage(err, spec.fallback),
		Kind:    MessageError,
	}
	if apperrors.IsTransport(err) {
		result.Message = spec.fallback
	}
	if apperrors.IsUnauthorized(err) {
		d.sessions.Clear(ctx, in.SID)
		result.LoggedOut = true
	}
	return result
}
