package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainsession "github.com/mergington/activities-ui/internal/domain/session"
	"github.com/mergington/activities-ui/internal/service"
	"github.com/mergington/activities-ui/internal/testutil"
)

func newActionRequest(t *testing.T, target, activity, email string) *http.Request {
	t.Helper()
	req := newSessionRequest(http.MethodPost, target, url.Values{"email": {email}})
	req.SetPathValue("name", activity)
	return req
}

func authedProbe(_ context.Context, _ string) domainsession.Session {
	return domainsession.Authenticated("abc", "Ms. Smith")
}

func TestSignup_SuccessRendersMessageAndRefreshedList(t *testing.T) {
	var gotInput service.DispatchInput
	auth := &fakeAuth{probeFunc: authedProbe}
	dispatcher := &fakeDispatcher{
		signupFunc: func(_ context.Context, in service.DispatchInput) service.DispatchResult {
			gotInput = in
			return service.DispatchResult{
				Message:    "Signed up a@b.com for Chess Club",
				Kind:       service.MessageSuccess,
				Activities: testutil.SampleActivities(),
				Refreshed:  true,
			}
		},
	}
	h := newTestUIHandlers(t, auth, dispatcher)

	rec := httptest.NewRecorder()
	h.Signup(rec, newActionRequest(t, "/activities/Chess%20Club/signup", "Chess Club", "a@b.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Signed up a@b.com for Chess Club")
	assert.Contains(t, body, `class="success"`)
	assert.Contains(t, body, "Chess Club")

	assert.Equal(t, testSID, gotInput.SID)
	assert.Equal(t, "Chess Club", gotInput.Activity)
	assert.Equal(t, "a@b.com", gotInput.Email)
	// The dispatcher already refreshed; the handler must not fetch again.
	assert.Equal(t, 0, dispatcher.refreshCalls)
}

func TestSignup_UnauthenticatedShowsGateMessage(t *testing.T) {
	auth := &fakeAuth{}
	dispatcher := &fakeDispatcher{
		signupFunc: func(_ context.Context, _ service.DispatchInput) service.DispatchResult {
			return service.DispatchResult{
				Message: "Please log in as a teacher to register students.",
				Kind:    service.MessageError,
			}
		},
	}
	h := newTestUIHandlers(t, auth, dispatcher)

	rec := httptest.NewRecorder()
	h.Signup(rec, newActionRequest(t, "/activities/Chess%20Club/signup", "Chess Club", "a@b.com"))

	body := rec.Body.String()
	assert.Contains(t, body, "Please log in as a teacher to register students.")
	assert.Contains(t, body, `class="error"`)
	// Page still needs data for rendering, so one fetch is expected.
	assert.Equal(t, 1, dispatcher.refreshCalls)
}

func TestSignup_UnauthorizedForcesLoggedOutView(t *testing.T) {
	auth := &fakeAuth{probeFunc: authedProbe}
	dispatcher := &fakeDispatcher{
		signupFunc: func(_ context.Context, _ service.DispatchInput) service.DispatchResult {
			return service.DispatchResult{
				Message:   "Teacher authentication required",
				Kind:      service.MessageError,
				LoggedOut: true,
			}
		},
	}
	h := newTestUIHandlers(t, auth, dispatcher)

	rec := httptest.NewRecorder()
	h.Signup(rec, newActionRequest(t, "/activities/Chess%20Club/signup", "Chess Club", "a@b.com"))

	body := rec.Body.String()
	assert.Contains(t, body, "Teacher authentication required")
	assert.Contains(t, body, "Not logged in - View only mode")
	assert.NotContains(t, body, `class="delete-btn"`)
}

func TestUnregister_SuccessRendersMessage(t *testing.T) {
	auth := &fakeAuth{probeFunc: authedProbe}
	dispatcher := &fakeDispatcher{
		unregisterFunc: func(_ context.Context, in service.DispatchInput) service.DispatchResult {
			return service.DispatchResult{
				Message:    "Unregistered " + in.Email + " from " + in.Activity,
				Kind:       service.MessageSuccess,
				Activities: testutil.SampleActivities(),
				Refreshed:  true,
			}
		},
	}
	h := newTestUIHandlers(t, auth, dispatcher)

	rec := httptest.NewRecorder()
	h.Unregister(rec, newActionRequest(t, "/activities/Chess%20Club/unregister", "Chess Club", "a@b.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unregistered a@b.com from Chess Club")
}

func TestUnregister_ValidationDetailSurfaced(t *testing.T) {
	auth := &fakeAuth{probeFunc: authedProbe}
	dispatcher := &fakeDispatcher{
		unregisterFunc: func(_ context.Context, _ service.DispatchInput) service.DispatchResult {
			return service.DispatchResult{
				Message: "Student is not signed up for this activity",
				Kind:    service.MessageError,
			}
		},
	}
	h := newTestUIHandlers(t, auth, dispatcher)

	rec := httptest.NewRecorder()
	h.Unregister(rec, newActionRequest(t, "/activities/Chess%20Club/unregister", "Chess Club", "a@b.com"))

	assert.Contains(t, rec.Body.String(), "Student is not signed up for this activity")
}

func TestDispatchAction_MissingActivityIs404(t *testing.T) {
	h := newTestUIHandlers(t, &fakeAuth{}, &fakeDispatcher{})

	req := newSessionRequest(http.MethodPost, "/activities//signup", url.Values{"email": {"a@b.com"}})
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
