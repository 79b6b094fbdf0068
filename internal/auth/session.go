package auth

import (
	"net/http"
	"time"

	"github.com/jw6ventures/leaddesk/internal/config"
)

// cookieName is the single piece of client-held state: the opaque bearer
// token issued by the remote API at login.
const cookieName = "token"

// tokenTTL matches the remote token's one week lifetime.
const tokenTTL = 7 * 24 * time.Hour

// SessionManager reads and writes the session token cookie. The token is
// opaque and stored verbatim; absence means anonymous.
type SessionManager struct {
	secure bool
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{secure: cfg.CookieSecure()}
}

// Issue persists the token into the session cookie.
func (m *SessionManager) Issue(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token extracts the session token from the request, empty when absent.
func (m *SessionManager) Token(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
