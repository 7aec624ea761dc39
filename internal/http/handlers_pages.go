package httpx

import (
	"net/http"

	"github.com/mergington/activities-ui/internal/domain/model"
	domainsession "github.com/mergington/activities-ui/internal/domain/session"
	"github.com/mergington/activities-ui/internal/view"
)

const loadActivitiesFailed = "Failed to load activities. Please try again later."

// Index handles the activities page.
// GET /.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.Auth.ProbeSession(ctx, SessionID(r))

	activities, err := h.Dispatcher.Refresh(ctx)
	if err != nil {
		h.logger().WarnContext(ctx, "activities fetch failed", "error", err)
		h.renderActivities(w, r, activitiesPageParams{
			Session: sess,
			Message: loadActivitiesFailed,
			Kind:    "error",
		})
		return
	}

	h.renderActivities(w, r, activitiesPageParams{Session: sess, Activities: activities})
}

// activitiesPageParams groups inputs for rendering the activities page.
type activitiesPageParams struct {
	Session    domainsession.Session
	Activities model.ActivityList
	Message    string
	Kind       string
}

// renderActivities renders the activities page with an optional transient message.
func (h *UIHandlers) renderActivities(w http.ResponseWriter, r *http.Request, p activitiesPageParams) {
	page := view.BuildActivitiesPage(p.Activities, p.Session)

	data := basePageData("Mergington High School Activities", page.Auth)
	data["Activities"] = page.Activities
	if p.Message != "" {
		data["Message"] = p.Message
		data["MessageKind"] = p.Kind
	}

	h.renderPage(w, r, "page-activities", data)
}
