package crm

import (
	"context"
	"net/http"
)

// AuthGateway wraps the remote identity endpoints.
type AuthGateway struct {
	rest *restClient
}

// Login exchanges credentials for a session token. A non-2xx response
// surfaces the remote error body's message, else "Login failed".
func (g *AuthGateway) Login(ctx context.Context, creds Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := g.rest.do(ctx, "auth.login", http.MethodPost, "/auth/login", "", nil, creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Me resolves the user behind a token. The caller decides what a
// rejection means; an *apiError signals the remote refused the token.
func (g *AuthGateway) Me(ctx context.Context, token string) (*User, error) {
	var user User
	if err := g.rest.do(ctx, "auth.me", http.MethodGet, "/auth/me", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
