package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	activitiesui "github.com/mergington/activities-ui"
	"github.com/mergington/activities-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Dispatcher *service.DispatcherService

	// Session cookie configuration
	CookieName   string
	CookieDomain string

	IsDev  bool         // Development mode flag for template reloading, etc.
	Logger *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) (http.Handler, error) {
	templateFS, staticFS, err := assetFilesystems(services.IsDev)
	if err != nil {
		return nil, err
	}

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		return nil, err
	}

	ui := &UIHandlers{
		T:          renderer,
		Auth:       services.Auth,
		Dispatcher: services.Dispatcher,
		IsDev:      services.IsDev,
		Logger:     services.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", ui.Index)
	mux.HandleFunc("GET /login", ui.LoginForm)
	mux.HandleFunc("POST /login", ui.Login)
	mux.HandleFunc("POST /logout", ui.Logout)
	mux.HandleFunc("POST /activities/{name}/signup", ui.Signup)
	mux.HandleFunc("POST /activities/{name}/unregister", ui.Unregister)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	handler := SessionCookie(SessionCookieConfig{
		CookieName:   services.CookieName,
		CookieDomain: services.CookieDomain,
	})(mux)

	return handler, nil
}

// assetFilesystems selects template and static filesystems for the current mode.
// Dev mode serves from disk so edits show up without re-embedding; production
// serves from the embedded filesystems.
func assetFilesystems(isDev bool) (fs.FS, fs.FS, error) {
	if isDev {
		return os.DirFS("web/templates"), os.DirFS("web/static"), nil
	}

	templateFS, err := fs.Sub(activitiesui.TemplateFS, "web/templates")
	if err != nil {
		return nil, nil, err
	}
	staticFS, err := fs.Sub(activitiesui.StaticFS, "web/static")
	if err != nil {
		return nil, nil, err
	}
	return templateFS, staticFS, nil
}
