package ui

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jw6ventures/leaddesk/internal/crm"
	"github.com/jw6ventures/leaddesk/internal/http/csrf"
	"github.com/jw6ventures/leaddesk/internal/http/errors"
)

const (
	defaultPageSize = 10
	// calendarPageSize is larger so a month view sees enough events.
	calendarPageSize = 50
	// referencePageSize is used for dropdown reference lists.
	referencePageSize = 100
)

// parsePage extracts the page number from query parameters, defaulting
// to 1.
func (h *Handler) parsePage(r *http.Request) int {
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 1
}

// urlID parses the {id} route parameter. Non-numeric ids are rejected
// here, before any gateway call.
func urlID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// pageData builds the base template payload shared by every page.
func (h *Handler) pageData(r *http.Request, title string, user *crm.User) map[string]any {
	data := map[string]any{
		"Title":        title,
		"User":         user,
		"FlashMessage": "",
		"FlashError":   "",
		"CSRFToken":    "",
	}
	return h.withFlash(r, data)
}

// withFlash adds flash messages and the CSRF token to template data.
func (h *Handler) withFlash(r *http.Request, data map[string]any) map[string]any {
	q := r.URL.Query()
	if status := q.Get("status"); status != "" {
		data["FlashMessage"] = status
	}
	if errMsg := q.Get("error"); errMsg != "" {
		data["FlashError"] = errMsg
	}
	if token := csrf.TokenFromContext(r.Context()); token != "" {
		data["CSRFToken"] = token
	}
	return data
}

// redirect redirects to a path with query parameters.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, path string, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	location := path
	if encoded := q.Encode(); encoded != "" {
		location += "?" + encoded
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// render executes a template and writes the response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	tmpl, ok := h.templates[name]
	if !ok {
		errors.InternalError(w, r, fmt.Errorf("template %q not found", name), fmt.Sprintf("template %q not found", name))
		return
	}

	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		errors.InternalError(w, r, err, fmt.Sprintf("template render error for %q", name))
	}
}
