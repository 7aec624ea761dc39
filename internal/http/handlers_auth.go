package httpx

import (
	"net/http"
	"strings"

	apperrors "github.com/mergington/activities-ui/internal/errors"
	"github.com/mergington/activities-ui/internal/service"
	"github.com/mergington/activities-ui/internal/view"
)

const loginFallbackMessage = "Login failed. Please try again."

// LoginForm handles the teacher login page.
// GET /login.
func (h *UIHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	sess := h.Auth.ProbeSession(r.Context(), SessionID(r))
	if sess.IsLoggedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.renderLogin(w, r, "", "")
}

// Login handles the teacher login form submission.
// POST /login.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, loginFallbackMessage, "")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.renderLogin(w, r, "Username and password are required", username)
		return
	}

	_, err := h.Auth.Login(r.Context(), service.LoginInput{
		SID:      SessionID(r),
		Username: username,
		Password: password,
	})
	if err != nil {
		msg := apperrors.UserMessage(err, loginFallbackMessage)
		if apperrors.IsTransport(err) {
			msg = loginFallbackMessage
		}
		h.renderLogin(w, r, msg, username)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles the logout form submission. Logout is local: the persisted
// token is discarded without calling the backend.
// POST /logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(r.Context(), SessionID(r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *UIHandlers) renderLogin(w http.ResponseWriter, r *http.Request, errMsg, username string) {
	data := basePageData("Teacher Login", view.AuthState{Label: "Not logged in - View only mode"})
	data["Username"] = username
	if errMsg != "" {
		data["Error"] = errMsg
	}

	h.renderPage(w, r, "page-login", data)
}
