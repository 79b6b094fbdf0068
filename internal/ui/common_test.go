package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
)

// chiRequest builds a request carrying an {id} route parameter.
func chiRequest(t *testing.T, id string) *http.Request {
	t.Helper()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestParsePage(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name  string
		query url.Values
		want  int
	}{
		{"no parameter", url.Values{}, 1},
		{"valid page", url.Values{"page": {"3"}}, 3},
		{"invalid page defaults to 1", url.Values{"page": {"invalid"}}, 1},
		{"zero page defaults to 1", url.Values{"page": {"0"}}, 1},
		{"negative page defaults to 1", url.Values{"page": {"-5"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/clients?"+tt.query.Encode(), nil)
			if got := h.parsePage(req); got != tt.want {
				t.Errorf("parsePage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestURLIDRejectsBadValues(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			req := chiRequest(t, raw)
			if _, err := urlID(req); err == nil {
				t.Errorf("urlID(%q) should fail", raw)
			}
		})
	}
}

func TestURLIDParsesValidValue(t *testing.T) {
	req := chiRequest(t, "42")
	id, err := urlID(req)
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Errorf("urlID = %d, want 42", id)
	}
}

func TestWithFlash(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/clients?status=Client+created&error=oops", nil)

	data := h.withFlash(req, map[string]any{})

	if data["FlashMessage"] != "Client created" {
		t.Errorf("FlashMessage = %v, want Client created", data["FlashMessage"])
	}
	if data["FlashError"] != "oops" {
		t.Errorf("FlashError = %v, want oops", data["FlashError"])
	}
}

func TestRedirectEncodesParams(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/clients/7/delete", nil)
	rec := httptest.NewRecorder()

	h.redirect(rec, req, "/clients", map[string]string{"status": "Client deleted", "skip": ""})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/clients?status=Client+deleted" {
		t.Errorf("Location = %q, want encoded status only", got)
	}
}

func TestDeleteConfirmPagesRedirectWithoutSideEffects(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{"clients", h.DeleteClientPage, "/clients"},
		{"tasks", h.DeleteTaskPage, "/tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.want+"/7/delete", nil)
			rec := httptest.NewRecorder()

			tt.handler(rec, req)

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
			}
			if got := rec.Header().Get("Location"); got != tt.want {
				t.Errorf("Location = %q, want %q", got, tt.want)
			}
		})
	}
}
