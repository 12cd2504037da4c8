package gateway

import (
	"context"
	"net/http"

	"gourmet-gateway/internal/domain/session"
)

// Identity is the resource gateway for the identity/auth service. Credentials
// and tokens pass through opaquely; this layer performs no authentication of
// its own, and auth failures propagate unmodified; there is no fallback
// session.
type Identity struct {
	client *Client
}

func NewIdentity(client *Client) *Identity {
	return &Identity{client: client}
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Email     string  `json:"email"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type authResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (g *Identity) Login(ctx context.Context, creds Credentials) (*session.Session, error) {
	resp, err := g.client.do(ctx, nil, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}
	return sessionFrom(resp)
}

func (g *Identity) Register(ctx context.Context, reg Registration) (*session.Session, error) {
	resp, err := g.client.do(ctx, nil, http.MethodPost, "/auth/register", reg)
	if err != nil {
		return nil, err
	}
	return sessionFrom(resp)
}

func sessionFrom(resp *response) (*session.Session, error) {
	var auth authResponse
	if err := resp.decode(&auth); err != nil {
		return nil, err
	}
	return &session.Session{
		Username: auth.Username,
		Token:    auth.Token,
		RoleHint: auth.Role,
	}, nil
}
