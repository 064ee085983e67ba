package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/student-support/supportctl/internal/core/domain"
	"github.com/student-support/supportctl/internal/core/ports"
)

func newAuthFixture(api *stubBackend) (*Auth, *Session, *memStore) {
	store := newMemStore()
	session := NewSession(store, zerolog.Nop())
	session.Load(context.Background())
	return NewAuth(api, session), session, store
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	api := &stubBackend{
		loginFn: func(_ context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
			if in.Email != "alice@campus.edu" || in.Password != "s3cret1" {
				t.Fatalf("unexpected credentials forwarded: %+v", in)
			}
			return &ports.AuthResult{Token: "abc123", User: testUser()}, nil
		},
	}
	auth, session, store := newAuthFixture(api)

	user, err := auth.Login(ctx, ports.LoginInput{Email: "alice@campus.edu", Password: "s3cret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !session.Authenticated() {
		t.Fatalf("expected session to be installed")
	}
	if store.data["token"] != "abc123" {
		t.Fatalf("expected token persisted, store = %v", store.data)
	}
	if store.data["user"] == "" {
		t.Fatalf("expected user persisted, store = %v", store.data)
	}
}

func TestAuth_Login_ValidationSkipsNetwork(t *testing.T) {
	// loginFn is nil: any backend call panics the test.
	auth, session, _ := newAuthFixture(&stubBackend{})

	_, err := auth.Login(context.Background(), ports.LoginInput{Email: "", Password: ""})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = auth.Login(context.Background(), ports.LoginInput{Email: "not-an-email", Password: "x"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}

	if session.Authenticated() {
		t.Fatalf("validation failure must not touch the session")
	}
}

func TestAuth_Login_BackendFailureLeavesSessionAlone(t *testing.T) {
	apiErr := errors.New("api: status 401: invalid credentials")
	api := &stubBackend{
		loginFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
			return nil, apiErr
		},
	}
	auth, session, store := newAuthFixture(api)

	_, err := auth.Login(context.Background(), ports.LoginInput{Email: "alice@campus.edu", Password: "wrong1"})
	if !errors.Is(err, apiErr) {
		t.Fatalf("expected the backend error through unchanged, got %v", err)
	}
	if session.Authenticated() {
		t.Fatalf("failed login must not mutate the session")
	}
	if len(store.data) != 0 {
		t.Fatalf("failed login must not persist anything, store = %v", store.data)
	}
}

func TestAuth_Login_MalformedAuthResponse(t *testing.T) {
	api := &stubBackend{
		loginFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{Token: "", User: testUser()}, nil
		},
	}
	auth, session, _ := newAuthFixture(api)

	if _, err := auth.Login(context.Background(), ports.LoginInput{Email: "alice@campus.edu", Password: "s3cret1"}); err == nil {
		t.Fatalf("expected an error for a token-less auth response")
	}
	if session.Authenticated() {
		t.Fatalf("malformed response must not install a session")
	}
}

func TestAuth_Register_Success(t *testing.T) {
	api := &stubBackend{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			user := &domain.User{ID: "u9", Name: in.Name, Email: in.Email, Role: domain.RoleStudent, StudentID: in.StudentID}
			return &ports.AuthResult{Token: "fresh", User: user}, nil
		},
	}
	auth, session, _ := newAuthFixture(api)

	user, err := auth.Register(context.Background(), ports.RegisterInput{
		Name:      "Bob",
		Email:     "bob@campus.edu",
		Password:  "hunter2",
		StudentID: "S-1024",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.RoleStudent {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if !session.Authenticated() {
		t.Fatalf("registration signs the new account in")
	}
}

func TestAuth_Register_Validation(t *testing.T) {
	auth, _, _ := newAuthFixture(&stubBackend{})

	_, err := auth.Register(context.Background(), ports.RegisterInput{
		Name:     "Bob",
		Email:    "bob@campus.edu",
		Password: "short", // below min=6
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Logout(t *testing.T) {
	api := &stubBackend{
		loginFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{Token: "abc123", User: testUser()}, nil
		},
	}
	auth, session, store := newAuthFixture(api)

	if _, err := auth.Login(context.Background(), ports.LoginInput{Email: "alice@campus.edu", Password: "s3cret1"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	auth.Logout(context.Background())

	if session.Authenticated() {
		t.Fatalf("expected signed out")
	}
	if len(store.data) != 0 {
		t.Fatalf("expected persisted session removed, store = %v", store.data)
	}
}
