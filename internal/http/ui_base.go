package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mergington/activities-ui/internal/domain/model"
	domainsession "github.com/mergington/activities-ui/internal/domain/session"
	"github.com/mergington/activities-ui/internal/service"
	"github.com/mergington/activities-ui/internal/view"
)

// AuthUI is a minimal interface for UI auth needs.
type AuthUI interface {
	ProbeSession(ctx context.Context, sid string) domainsession.Session
	Login(ctx context.Context, in service.LoginInput) (domainsession.Session, error)
	Logout(ctx context.Context, sid string) domainsession.Session
}

// DispatcherUI is a minimal interface for UI activity actions.
type DispatcherUI interface {
	Refresh(ctx context.Context) (model.ActivityList, error)
	Signup(ctx context.Context, in service.DispatchInput) service.DispatchResult
	Unregister(ctx context.Context, in service.DispatchInput) service.DispatchResult
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ AuthUI       = (*service.AuthService)(nil)
	_ DispatcherUI = (*service.DispatcherService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T          *TemplateRenderer
	Auth       AuthUI
	Dispatcher DispatcherUI
	IsDev      bool // Development mode flag for verbose template errors
	Logger     *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// basePageData constructs the common page data map with auth context.
func basePageData(title string, auth view.AuthState) map[string]any {
	return map[string]any{
		"Title": title,
		"Auth":  auth,
	}
}

// renderPage renders a page template and maps failures to a 500.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.T.RenderPage(w, name, data); err != nil {
		h.logger().ErrorContext(r.Context(), "page render failed",
			"template", name,
			"path", r.URL.Path,
		)
		if h.IsDev {
			http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
