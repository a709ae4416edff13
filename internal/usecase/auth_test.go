package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/errors"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
	pkgAuth "github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/pkg/auth"
	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/test"
)

func newAuthUseCase() (*AuthUseCase, *test.UserRepositoryStub) {
	users := test.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, &test.HasherStub{}, &test.StrategyStub{})
	return uc, users
}

func TestAuthRegister(t *testing.T) {
	uc, users := newAuthUseCase()

	user, token, err := uc.Register(context.Background(), "  Alice@Example.com ", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Role != model.RoleCustomer {
		t.Errorf("role: got %q, want customer", user.Role)
	}
	if token == "" {
		t.Error("expected token")
	}
	if _, ok := users.Users["alice@example.com"]; !ok {
		t.Error("user not stored under normalized email")
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	uc, _ := newAuthUseCase()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"no at sign", "alice.example.com", "secret1"},
		{"at at start", "@example.com", "secret1"},
		{"at at end", "alice@", "secret1"},
		{"short password", "alice@example.com", "12345"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tt.email, tt.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Errorf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthRegisterDuplicate(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "bob@example.com", "secret1"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "BOB@example.com", "another1"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Errorf("got %v, want ErrAlreadyExists", err)
	}
}

func TestAuthAuthenticate(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "carol@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := uc.Authenticate(context.Background(), "Carol@Example.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Errorf("email: got %q", user.Email)
	}
	if token == "" {
		t.Error("expected token")
	}
}

func TestAuthAuthenticateFailures(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "dave@example.com", "secret1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "dave@example.com", "wrong-pass"},
		{"unknown user", "ghost@example.com", "secret1"},
		{"empty password", "dave@example.com", ""},
		{"empty email", "", "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := uc.Authenticate(context.Background(), tt.email, tt.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Errorf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthParseToken(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Errorf("empty token: got %v, want ErrInvalidToken", err)
	}

	claims, err := uc.ParseToken("7:admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 || claims.Role != "admin" {
		t.Errorf("claims: got %+v", claims)
	}
}

func TestAuthGetByID(t *testing.T) {
	uc, users := newAuthUseCase()

	created, _, err := uc.Register(context.Background(), "erin@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := uc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "erin@example.com" {
		t.Errorf("email: got %q", got.Email)
	}

	users.Err = nil
	if _, err := uc.GetByID(context.Background(), 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
