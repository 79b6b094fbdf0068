package ui

import (
	"net/http"
	"strings"

	"github.com/jw6ventures/leaddesk/internal/crm"
	"github.com/jw6ventures/leaddesk/internal/http/errors"
)

// Home renders the landing page. The access gate already bounced
// logged-in users to the dashboard.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Welcome", h.authService.CurrentUser(w, r))
	h.render(w, r, "home.html", data)
}

// LoginPage renders the login form, carrying through the redirect
// target the gate attached.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Log in", nil)
	data["RedirectTo"] = r.URL.Query().Get("redirect")
	data["FormError"] = ""
	h.render(w, r, "login.html", data)
}

// LoginSubmit exchanges the submitted credentials for a session. Failure
// re-renders the form with the remote message inline; success lands on
// the redirect target or the dashboard.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errors.BadRequestError(w, r, err, "bad form")
		return
	}

	creds := crm.Credentials{
		Username: formValue(r, "email"),
		Password: r.PostFormValue("password"),
	}

	result := h.authService.Login(r.Context(), w, creds)
	if !result.Success {
		data := h.pageData(r, "Log in", nil)
		data["RedirectTo"] = r.URL.Query().Get("redirect")
		data["FormError"] = result.Error
		h.render(w, r, "login.html", data)
		return
	}

	errors.LogInfo(r, "session issued for "+creds.Username)

	// Only same-site absolute paths are honored; anything else, including
	// protocol-relative URLs, falls back to the dashboard.
	target := r.URL.Query().Get("redirect")
	if target == "" || target[0] != '/' || strings.HasPrefix(target, "//") {
		target = "/dashboard"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// RegisterPage explains that accounts are provisioned by invitation.
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "Register", nil)
	h.render(w, r, "register.html", data)
}

// Dashboard is the signed-in landing page.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.RequireAuth(w, r, "/login")
	if !ok {
		return
	}
	data := h.pageData(r, "Dashboard", user)
	h.render(w, r, "dashboard.html", data)
}

// LogoutPage handles a stray GET on the logout route; only the POST
// actually ends the session.
func (h *Handler) LogoutPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout ends the session and returns to the login page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(w)
	errors.LogInfo(r, "session ended")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
