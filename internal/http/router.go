package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/jw6ventures/leaddesk/internal/auth"
	"github.com/jw6ventures/leaddesk/internal/config"
	"github.com/jw6ventures/leaddesk/internal/crm"
	"github.com/jw6ventures/leaddesk/internal/http/csrf"
	"github.com/jw6ventures/leaddesk/internal/http/ratelimit"
	"github.com/jw6ventures/leaddesk/internal/metrics"
	"github.com/jw6ventures/leaddesk/internal/ui"
)

// NewRouter wires all HTTP routes for the rendered pages.
func NewRouter(cfg *config.Config, api *crm.API, sessions *auth.SessionManager, authService *auth.Service) http.Handler {
	r := chi.NewRouter()

	// Login endpoint: 5 requests per second, burst of 10
	loginRateLimiter := ratelimit.NewIPRateLimiter(rate.Limit(5), 10, 5*time.Minute, cfg.TrustedProxies)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(overrideMethod)
	r.Use(metrics.Middleware())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		// Readiness means the process is serving; the remote API has its
		// own health surface and is probed per request.
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.PrometheusEnabled {
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			metrics.Handler().ServeHTTP(w, r)
		})
	}

	uiHandler := ui.NewHandler(cfg, api, authService, sessions)

	r.Group(func(r chi.Router) {
		r.Use(sessions.Gate)
		r.Use(csrf.Middleware(cfg))

		r.Get("/", uiHandler.Home)
		r.Get("/login", uiHandler.LoginPage)
		r.With(loginRateLimiter.Middleware()).Post("/login", uiHandler.LoginSubmit)
		r.Get("/register", uiHandler.RegisterPage)
		r.Get("/logout", uiHandler.LogoutPage)
		r.Post("/logout", uiHandler.Logout)

		r.Get("/dashboard", uiHandler.Dashboard)

		r.Get("/clients", uiHandler.Clients)
		r.Get("/clients/new", uiHandler.NewClientPage)
		r.Post("/clients/new", uiHandler.CreateClient)
		r.Get("/clients/{id}", uiHandler.ViewClient)
		r.Delete("/clients/{id}", uiHandler.DeleteClient)
		r.Get("/clients/{id}/delete", uiHandler.DeleteClientPage)
		r.Post("/clients/{id}/delete", uiHandler.DeleteClient) // HTML form fallback

		r.Get("/tasks", uiHandler.Tasks)
		r.Get("/tasks/new", uiHandler.NewTaskPage)
		r.Post("/tasks/new", uiHandler.CreateTask)
		r.Get("/tasks/{id}", uiHandler.ViewTask)
		r.Delete("/tasks/{id}", uiHandler.DeleteTask)
		r.Get("/tasks/{id}/edit", uiHandler.EditTaskPage)
		r.Put("/tasks/{id}/edit", uiHandler.UpdateTask)
		r.Post("/tasks/{id}/edit", uiHandler.UpdateTask) // HTML form fallback
		r.Get("/tasks/{id}/delete", uiHandler.DeleteTaskPage)
		r.Post("/tasks/{id}/delete", uiHandler.DeleteTask) // HTML form fallback

		r.Get("/calendar", uiHandler.Calendar)
		r.Post("/calendar/events", uiHandler.CreateEvent)
		r.Put("/calendar/events/{id}", uiHandler.UpdateEvent)
		r.Post("/calendar/events/{id}", uiHandler.UpdateEvent) // HTML form fallback
		r.Delete("/calendar/events/{id}", uiHandler.DeleteEvent)
		r.Post("/calendar/events/{id}/delete", uiHandler.DeleteEvent) // HTML form fallback
	})

	return r
}

func overrideMethod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.Method
		if r.Method == http.MethodPost {
			if m := strings.TrimSpace(r.PostFormValue("_method")); m != "" {
				method = m
			} else if m := strings.TrimSpace(r.URL.Query().Get("_method")); m != "" {
				method = m
			}
		}
		switch strings.ToUpper(method) {
		case http.MethodPut, http.MethodDelete:
			r.Method = strings.ToUpper(method)
		}
		next.ServeHTTP(w, r)
	})
}
