package service

import (
	"context"
	"fmt"

	"github.com/student-support/supportctl/internal/core/domain"
	"github.com/student-support/supportctl/internal/core/ports"
)

// Auth drives the sign-in and registration flows: validate locally, call
// the backend, then hand the issued credentials to the session store. The
// session is only touched after the backend has answered successfully.
type Auth struct {
	api     ports.Backend
	session *Session
}

func NewAuth(api ports.Backend, session *Session) *Auth {
	return &Auth{api: api, session: session}
}

// Login exchanges credentials for a token and installs the session.
func (a *Auth) Login(ctx context.Context, in ports.LoginInput) (*domain.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	res, err := a.api.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	return a.install(ctx, res)
}

// Register creates an account. The backend signs the new account in
// directly, so a successful registration also installs the session.
func (a *Auth) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	res, err := a.api.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return a.install(ctx, res)
}

// Logout ends the session. Safe to call when already signed out.
func (a *Auth) Logout(ctx context.Context) {
	a.session.Logout(ctx)
}

func (a *Auth) install(ctx context.Context, res *ports.AuthResult) (*domain.User, error) {
	if res == nil || res.Token == "" || res.User == nil {
		return nil, fmt.Errorf("auth response missing token or user")
	}
	a.session.Login(ctx, res.Token, res.User)
	return res.User, nil
}
