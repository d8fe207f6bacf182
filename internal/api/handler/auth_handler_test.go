package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
)

func TestAuthHandler_RegisterAdmin_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Name != "Ana" || in.Email != "ana@mercado.com" || in.Password != "segredo" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/auth/registeradmin",
		jsonBody(`{"nome":"Ana","email":"ana@mercado.com","senha":"segredo"}`))
	serve(e, c, h.RegisterAdmin)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp createdResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "u1" || resp.Message != "Administrador criado com sucesso" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_RegisterAdmin_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	for _, body := range []string{`{"nome":"Ana","email":"ana@mercado.com"}`, `not-json`, `{}`} {
		e, c, rec := newTestContext(http.MethodPost, "/auth/registeradmin", jsonBody(body))
		serve(e, c, h.RegisterAdmin)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, rec.Code)
		}
		if msg := decodeMessage(t, rec); msg != msgMissingFields {
			t.Fatalf("%s: unexpected message %q", body, msg)
		}
	}
}

func TestAuthHandler_RegisterAdmin_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/auth/registeradmin",
		jsonBody(`{"nome":"Ana","email":"ana@mercado.com","senha":"segredo"}`))
	serve(e, c, h.RegisterAdmin)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Usuário já cadastrado." {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthHandler_RegisterAdmin_StoreFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, errors.New("connection reset")
		},
	}
	h := NewAuthHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/auth/registeradmin",
		jsonBody(`{"nome":"Ana","email":"ana@mercado.com","senha":"segredo"}`))
	serve(e, c, h.RegisterAdmin)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Erro ao criar administrador" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "ana@mercado.com" || password != "segredo" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/auth/login",
		jsonBody(`{"email":"ana@mercado.com","senha":"segredo"}`))
	serve(e, c, h.Login)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
}

func TestAuthHandler_Login_FailuresShareMessage(t *testing.T) {
	for _, failure := range []error{domain.ErrUserNotFound, domain.ErrInvalidCredentials} {
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, email, password string) (string, error) {
				return "", failure
			},
		}
		h := NewAuthHandler(stub)

		e, c, rec := newTestContext(http.MethodPost, "/auth/login",
			jsonBody(`{"email":"ana@mercado.com","senha":"errada"}`))
		serve(e, c, h.Login)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", failure, rec.Code)
		}
		if msg := decodeMessage(t, rec); msg != msgBadLogin {
			t.Fatalf("%v: unexpected message %q", failure, msg)
		}
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrTooManyAttempts
		},
	}
	h := NewAuthHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/auth/login",
		jsonBody(`{"email":"ana@mercado.com","senha":"errada"}`))
	serve(e, c, h.Login)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/auth/login", jsonBody(`{"email":"ana@mercado.com"}`))
	serve(e, c, h.Login)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
