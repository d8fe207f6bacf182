package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vilinga/supermercado-api/internal/api/middleware"
	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

type stubClerkService struct {
	createFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubClerkService) Create(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubClerkService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubClerkService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubSaleService struct {
	recordFn func(ctx context.Context, in ports.RecordSaleInput) (*ports.SaleResult, error)
	listFn   func(ctx context.Context) ([]*domain.Sale, error)
}

func (s *stubSaleService) Record(ctx context.Context, in ports.RecordSaleInput) (*ports.SaleResult, error) {
	return s.recordFn(ctx, in)
}

func (s *stubSaleService) List(ctx context.Context) ([]*domain.Sale, error) {
	return s.listFn(ctx)
}

// newTestContext builds an echo context with the validator installed, as the
// router does.
func newTestContext(method, target string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

// withClaims mimics the Auth middleware.
func withClaims(c echo.Context, userID string, role domain.Role) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, string(role))
}

// serve runs h and lets echo's error handler render a returned error.
func serve(e *echo.Echo, c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	msg, _ := resp["message"].(string)
	return msg
}
