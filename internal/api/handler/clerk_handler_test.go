package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
)

func TestClerkHandler_Create(t *testing.T) {
	stub := &stubClerkService{
		createFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return &domain.User{ID: "c1", Name: in.Name, Email: in.Email, Role: domain.RoleClerk}, nil
		},
	}
	h := NewClerkHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/balconistas",
		jsonBody(`{"nome":"Bia","email":"bia@mercado.com","senha":"123"}`))
	serve(e, c, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp createdResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "c1" || resp.Message != "Balconista criado com sucesso" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestClerkHandler_Create_Duplicate(t *testing.T) {
	stub := &stubClerkService{
		createFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewClerkHandler(stub)

	e, c, rec := newTestContext(http.MethodPost, "/balconistas",
		jsonBody(`{"nome":"Bia","email":"bia@mercado.com","senha":"123"}`))
	serve(e, c, h.Create)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Balconista já cadastrado." {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestClerkHandler_List_OmitsPassword(t *testing.T) {
	stub := &stubClerkService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "c1", Name: "Bia", Email: "bia@mercado.com", PasswordHash: "$2a$10$hash", Role: domain.RoleClerk},
			}, nil
		},
	}
	h := NewClerkHandler(stub)

	e, c, rec := newTestContext(http.MethodGet, "/balconistas", nil)
	serve(e, c, h.List)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "senha") || strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "c1" || resp[0]["nome"] != "Bia" || resp[0]["email"] != "bia@mercado.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if len(resp[0]) != 3 {
		t.Fatalf("expected exactly id, nome, email; got %+v", resp[0])
	}
}

func TestClerkHandler_List_Empty(t *testing.T) {
	stub := &stubClerkService{
		listFn: func(ctx context.Context) ([]*domain.User, error) { return nil, nil },
	}
	h := NewClerkHandler(stub)

	e, c, rec := newTestContext(http.MethodGet, "/balconistas", nil)
	serve(e, c, h.List)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestClerkHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"deleted", nil, http.StatusOK, "Balconista excluído com sucesso."},
		{"not found", domain.ErrUserNotFound, http.StatusNotFound, "Balconista não encontrado."},
		{"store failure", errors.New("timeout"), http.StatusInternalServerError, "Erro ao excluir balconista"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			stub := &stubClerkService{
				deleteFn: func(ctx context.Context, id string) error {
					gotID = id
					return tt.err
				},
			}
			h := NewClerkHandler(stub)

			e, c, rec := newTestContext(http.MethodDelete, "/balconistas/c1", nil)
			c.SetParamNames("id")
			c.SetParamValues("c1")
			serve(e, c, h.Delete)

			if gotID != "c1" {
				t.Fatalf("expected id c1, got %q", gotID)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if msg := decodeMessage(t, rec); msg != tt.wantMsg {
				t.Fatalf("unexpected message %q", msg)
			}
		})
	}
}
