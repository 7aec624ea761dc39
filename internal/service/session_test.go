package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mergington/activities-ui/internal/mocks"
	"github.com/mergington/activities-ui/internal/ports"
)

const testSID = "sid-123"

// newSessionService creates a mock token store and service for testing.
func newSessionService(t *testing.T) (*mocks.MockTokenStore, *SessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tokens := mocks.NewMockTokenStore(ctrl)
	svc := NewSessionService(SessionServiceOptions{Tokens: tokens})
	return tokens, svc
}

func TestSessionService_Hydrate_EmptySID(t *testing.T) {
	t.Parallel()
	_, svc := newSessionService(t)

	sess := svc.Hydrate(context.Background(), "")

	assert.False(t, sess.HasToken())
	assert.False(t, sess.IsLoggedIn())
}

func TestSessionService_Hydrate_TokenPresent(t *testing.T) {
	t.Parallel()
	tokens, svc := newSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().Get(ctx, testSID).Return("opaque-token", nil)

	sess := svc.Hydrate(ctx, testSID)

	assert.True(t, sess.HasToken())
	assert.Equal(t, "opaque-token", sess.Token)
	// Hydration never authenticates; only a probe does.
	assert.False(t, sess.IsLoggedIn())
}

func TestSessionService_Hydrate_NoPersistedToken(t *testing.T) {
	t.Parallel()
	tokens, svc := newSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().Get(ctx, testSID).Return("", ports.ErrTokenNotFound)

	sess := svc.Hydrate(ctx, testSID)
	assert.False(t, sess.HasToken())
}

func TestSessionService_Hydrate_StoreFailureDegrades(t *testing.T) {
	t.Parallel()
	tokens, svc := newSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().Get(ctx, testSID).Return("", errors.New("redis down"))

	sess := svc.Hydrate(ctx, testSID)
	assert.False(t, sess.HasToken())
	assert.False(t, sess.IsLoggedIn())
}

func TestSessionService_SetAuthenticated(t *testing.T) {
	t.Parallel()
	tokens, svc := newSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().Save(ctx, testSID, "abc").Return(nil)

	sess, err := svc.SetAuthenticated(ctx, testSID, ports.LoginResult{
		AccessToken: "abc",
		TeacherName: "Ms. Smith",
	})
	require.NoError(t, err)
	assert.True(t, sess.IsLoggedIn())
	assert.Equal(t, "Ms. Smith", sess.TeacherName)
}

func TestSessionService_SetAuthenticated_Validation(t *testing.T) {
	t.Parallel()
	_, svc := newSessionService(t)
	ctx := context.Background()

	_, err := svc.SetAuthenticated(ctx, "", ports.LoginResult{AccessToken: "abc", TeacherName: "Ms. Smith"})
	assert.Error(t, err)

	_, err = svc.SetAuthenticated(ctx, testSID, ports.LoginResult{TeacherName: "Ms. Smith"})
	assert.Error(t, err)

	_, err = svc.SetAuthenticated(ctx, testSID, ports.LoginResult{AccessToken: "abc"})
	assert.Error(t, err)
}

func TestSessionService_SetAuthenticated_PersistFailure(t *testing.T) {
	t.Parallel()
	tokens, svc := newSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().Save(ctx, testSID, "abc").Return(errors.New("redis down"))

	sess, err := svc.SetAuthenticated(ctx, testSID, ports.LoginResult{
		AccessToken: "abc",
		TeacherName: "Ms. Smith",
	})
	require.Error(t, err)
	assert.False(t, sess.IsLoggedIn())
}

func TestSessionService_Clear(t *testing.T) {
	t.Parallel()
	tokens, svc := newSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().Delete(ctx, testSID).Return(nil)

	sess := svc.Clear(ctx, testSID)
	assert.False(t, sess.HasToken())
	assert.False(t, sess.IsLoggedIn())
}

func TestSessionService_Clear_DeleteFailureStillLogsOut(t *testing.T) {
	t.Parallel()
	tokens, svc := newSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().Delete(ctx, testSID).Return(errors.New("redis down"))

	sess := svc.Clear(ctx, testSID)
	assert.False(t, sess.IsLoggedIn())
}

func TestSessionService_Clear_EmptySID(t *testing.T) {
	t.Parallel()
	_, svc := newSessionService(t)

	sess := svc.Clear(context.Background(), "")
	assert.False(t, sess.HasToken())
}
