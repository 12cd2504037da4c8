// Package commands holds the mutation paths. Unlike the read side these
// never substitute fallback data: gateway errors propagate unmodified and
// the handler layer owns the user-visible messaging.
package commands

import (
	"context"

	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/infra/gateway"
	"gourmet-gateway/internal/pkg/errs"
)

var (
	ErrMissingCredentials = errs.New("username and password are required")
)

// IdentityGateway is the auth slice of the resource gateway.
type IdentityGateway interface {
	Login(ctx context.Context, creds gateway.Credentials) (*session.Session, error)
	Register(ctx context.Context, reg gateway.Registration) (*session.Session, error)
}

type AuthCommands interface {
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Register(ctx context.Context, reg gateway.Registration) (*session.Session, error)
	// DemoSession establishes an offline session backed by the sentinel
	// token; no remote call is made and no credential will ever be sent
	// upstream for it.
	DemoSession(admin bool) *session.Session
}

type authCommandsImpl struct {
	identity IdentityGateway
}

func NewAuthCommands(identity IdentityGateway) AuthCommands {
	return &authCommandsImpl{identity: identity}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if username == "" || password == "" {
		return nil, errs.Mark(ErrMissingCredentials, errs.ErrDomainValidation)
	}
	return a.identity.Login(ctx, gateway.Credentials{Username: username, Password: password})
}

func (a *authCommandsImpl) Register(ctx context.Context, reg gateway.Registration) (*session.Session, error) {
	if reg.Username == "" || reg.Password == "" {
		return nil, errs.Mark(ErrMissingCredentials, errs.ErrDomainValidation)
	}
	return a.identity.Register(ctx, reg)
}

func (a *authCommandsImpl) DemoSession(admin bool) *session.Session {
	username := "Guest User"
	if admin {
		username = "Guest Admin"
	}
	return &session.Session{Username: username, Token: session.DemoToken}
}
