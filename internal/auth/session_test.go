package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jw6ventures/leaddesk/internal/config"
)

func issuedCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	return cookies[0]
}

func TestIssueSetsSessionCookie(t *testing.T) {
	m := testSessionManager()
	rec := httptest.NewRecorder()

	m.Issue(rec, "opaque-token")

	c := issuedCookie(t, rec)
	if c.Name != "token" {
		t.Errorf("Name = %q, want %q", c.Name, "token")
	}
	if c.Value != "opaque-token" {
		t.Errorf("Value = %q, want %q", c.Value, "opaque-token")
	}
	if c.Path != "/" {
		t.Errorf("Path = %q, want %q", c.Path, "/")
	}
	if !c.HttpOnly {
		t.Error("cookie should be HttpOnly")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", c.SameSite)
	}
	if c.MaxAge != 7*24*60*60 {
		t.Errorf("MaxAge = %d, want %d", c.MaxAge, 7*24*60*60)
	}
	if c.Secure {
		t.Error("plain-http base URL should not mark the cookie Secure")
	}
}

func TestIssueSecureWithHTTPSBaseURL(t *testing.T) {
	m := NewSessionManager(&config.Config{BaseURL: "https://crm.example.com"})
	rec := httptest.NewRecorder()

	m.Issue(rec, "tok")

	if !issuedCookie(t, rec).Secure {
		t.Error("https base URL should mark the cookie Secure")
	}
}

func TestClearExpiresCookie(t *testing.T) {
	m := testSessionManager()
	rec := httptest.NewRecorder()

	m.Clear(rec)

	c := issuedCookie(t, rec)
	if c.Value != "" {
		t.Errorf("Value = %q, want empty", c.Value)
	}
	if c.MaxAge != -1 {
		t.Errorf("MaxAge = %d, want -1", c.MaxAge)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := testSessionManager()
	rec := httptest.NewRecorder()
	m.Issue(rec, "tok")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	if got := m.Token(req); got != "tok" {
		t.Errorf("Token = %q, want %q", got, "tok")
	}
}

func TestTokenAbsent(t *testing.T) {
	m := testSessionManager()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if got := m.Token(req); got != "" {
		t.Errorf("Token = %q, want empty", got)
	}
}
