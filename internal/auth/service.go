package auth

import (
	"context"
	"net/http"

	"github.com/jw6ventures/leaddesk/internal/crm"
	httperrors "github.com/jw6ventures/leaddesk/internal/http/errors"
)

// LoginResult is a tagged success/failure value; the service never raises.
type LoginResult struct {
	Success bool
	User    *crm.User
	Error   string
}

// Service drives the session lifecycle against the remote identity
// endpoints.
type Service struct {
	api      *crm.API
	sessions *SessionManager
}

func NewService(api *crm.API, sessions *SessionManager) *Service {
	return &Service{api: api, sessions: sessions}
}

// Login exchanges credentials for a token, persists it into the session
// cookie, and resolves the user profile with the fresh token.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, creds crm.Credentials) LoginResult {
	token, err := s.api.Auth.Login(ctx, creds)
	if err != nil {
		return LoginResult{Error: crm.RemoteMessage(err, "Login failed")}
	}

	s.sessions.Issue(w, token)

	user, err := s.api.Auth.Me(ctx, token)
	if err != nil {
		return LoginResult{Error: "Failed to fetch user data"}
	}
	return LoginResult{Success: true, User: user}
}

// Logout clears the session cookie. The caller treats the user as logged
// out regardless of the outcome.
func (s *Service) Logout(w http.ResponseWriter) {
	s.sessions.Clear(w)
}

// CurrentUser resolves the user behind the request's token. No token means
// no user, not an error. A rejected token clears the cookie before
// reporting no user; transport failures are logged and swallowed.
func (s *Service) CurrentUser(w http.ResponseWriter, r *http.Request) *crm.User {
	token := s.sessions.Token(r)
	if token == "" {
		return nil
	}

	user, err := s.api.Auth.Me(r.Context(), token)
	if err != nil {
		if crm.IsRejection(err) {
			// Token is invalid or expired; drop it so the next request
			// starts anonymous.
			s.sessions.Clear(w)
			return nil
		}
		httperrors.LogError(r, "failed to fetch user data", err)
		return nil
	}
	return user
}

// RequireAuth resolves the current user or redirects to fallback. Handlers
// that need the identity, not just the presence gate, use this.
func (s *Service) RequireAuth(w http.ResponseWriter, r *http.Request, fallback string) (*crm.User, bool) {
	user := s.CurrentUser(w, r)
	if user == nil {
		http.Redirect(w, r, fallback, http.StatusSeeOther)
		return nil, false
	}
	return user, true
}
