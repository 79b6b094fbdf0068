package ui

import (
	"html/template"
	"net/http"

	"github.com/jw6ventures/leaddesk/internal/auth"
	"github.com/jw6ventures/leaddesk/internal/config"
	"github.com/jw6ventures/leaddesk/internal/crm"
)

// Handler serves server-rendered HTML pages.
type Handler struct {
	cfg         *config.Config
	api         *crm.API
	authService *auth.Service
	sessions    *auth.SessionManager
	templates   map[string]*template.Template
}

func NewHandler(cfg *config.Config, api *crm.API, authService *auth.Service, sessions *auth.SessionManager) *Handler {
	return &Handler{
		cfg:         cfg,
		api:         api,
		authService: authService,
		sessions:    sessions,
		templates:   templates,
	}
}

// token pulls the session token off the request; empty means anonymous.
func (h *Handler) token(r *http.Request) string {
	return h.sessions.Token(r)
}
