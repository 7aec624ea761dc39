package httpx

import (
	"context"
	"net/http"
	"strings"

	domainsession "github.com/mergington/activities-ui/internal/domain/session"
	"github.com/mergington/activities-ui/internal/service"
)

// Signup handles the student registration form submission.
// POST /activities/{name}/signup.
func (h *UIHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	h.dispatchAction(w, r, h.Dispatcher.Signup)
}

// Unregister handles the student unregister form submission.
// POST /activities/{name}/unregister.
func (h *UIHandlers) Unregister(w http.ResponseWriter, r *http.Request) {
	h.dispatchAction(w, r, h.Dispatcher.Unregister)
}

type dispatchFunc func(ctx context.Context, in service.DispatchInput) service.DispatchResult

// dispatchAction runs a mutation through the dispatcher and renders the
// activities page with the outcome message.
func (h *UIHandlers) dispatchAction(w http.ResponseWriter, r *http.Request, action dispatchFunc) {
	ctx := r.Context()
	sid := SessionID(r)

	activity := r.PathValue("name")
	if activity == "" {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))

	sess := h.Auth.ProbeSession(ctx, sid)
	result := action(ctx, service.DispatchInput{
		SID:      sid,
		Session:  sess,
		Activity: activity,
		Email:    email,
	})

	if result.LoggedOut {
		sess = domainsession.LoggedOut()
	}

	activities := result.Activities
	if !result.Refreshed {
		// Failures keep the last known data; re-fetch only to render the page.
		fetched, err := h.Dispatcher.Refresh(ctx)
		if err != nil {
			h.logger().WarnContext(ctx, "activities fetch failed after action", "error", err)
		} else {
			activities = fetched
		}
	}

	h.renderActivities(w, r, activitiesPageParams{
		Session:    sess,
		Activities: activities,
		Message:    result.Message,
		Kind:       string(result.Kind),
	})
}
