package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities-ui/internal/domain/model"
	domainsession "github.com/mergington/activities-ui/internal/domain/session"
	"github.com/mergington/activities-ui/internal/service"
	"github.com/mergington/activities-ui/internal/testutil"
)

const testSID = "sid-123"

// fakeAuth is a test double for the AuthUI interface.
type fakeAuth struct {
	probeFunc   func(ctx context.Context, sid string) domainsession.Session
	loginFunc   func(ctx context.Context, in service.LoginInput) (domainsession.Session, error)
	logoutFunc  func(ctx context.Context, sid string) domainsession.Session
	logoutCalls int
}

func (f *fakeAuth) ProbeSession(ctx context.Context, sid string) domainsession.Session {
	if f.probeFunc != nil {
		return f.probeFunc(ctx, sid)
	}
	return domainsession.LoggedOut()
}

func (f *fakeAuth) Login(ctx context.Context, in service.LoginInput) (domainsession.Session, error) {
	if f.loginFunc != nil {
		return f.loginFunc(ctx, in)
	}
	return domainsession.Authenticated("abc", "Ms. Smith"), nil
}

func (f *fakeAuth) Logout(ctx context.Context, sid string) domainsession.Session {
	f.logoutCalls++
	if f.logoutFunc != nil {
		return f.logoutFunc(ctx, sid)
	}
	return domainsession.LoggedOut()
}

// fakeDispatcher is a test double for the DispatcherUI interface.
type fakeDispatcher struct {
	refreshFunc    func(ctx context.Context) (model.ActivityList, error)
	signupFunc     func(ctx context.Context, in service.DispatchInput) service.DispatchResult
	unregisterFunc func(ctx context.Context, in service.DispatchInput) service.DispatchResult
	refreshCalls   int
}

func (f *fakeDispatcher) Refresh(ctx context.Context) (model.ActivityList, error) {
	f.refreshCalls++
	if f.refreshFunc != nil {
		return f.refreshFunc(ctx)
	}
	return testutil.SampleActivities(), nil
}

func (f *fakeDispatcher) Signup(ctx context.Context, in service.DispatchInput) service.DispatchResult {
	if f.signupFunc != nil {
		return f.signupFunc(ctx, in)
	}
	return service.DispatchResult{}
}

func (f *fakeDispatcher) Unregister(ctx context.Context, in service.DispatchInput) service.DispatchResult {
	if f.unregisterFunc != nil {
		return f.unregisterFunc(ctx, in)
	}
	return service.DispatchResult{}
}

// newTestUIHandlers builds UIHandlers backed by the real on-disk templates.
func newTestUIHandlers(t *testing.T, auth *fakeAuth, dispatcher *fakeDispatcher) *UIHandlers {
	t.Helper()

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS("../../web/templates"),
	})
	require.NoError(t, err)

	return &UIHandlers{
		T:          renderer,
		Auth:       auth,
		Dispatcher: dispatcher,
	}
}

// newSessionRequest builds a request carrying a session ID in context,
// as the SessionCookie middleware would.
func newSessionRequest(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), sessionIDKey{}, testSID)
	return req.WithContext(ctx)
}
