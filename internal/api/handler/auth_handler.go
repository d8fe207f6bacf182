package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
)

const (
	msgMissingFields = "Preencha todos os campos."
	// Same answer for unknown email and wrong password.
	msgBadLogin = "Email ou senha inválidos."
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterAdmin creates an administrator account.
//
// @Summary      Register an administrator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Setup-Token  header    string           false  "Bootstrap token, required when ADMIN_SETUP_TOKEN is configured"
// @Param        body           body      registerRequest  true   "Administrator details"
// @Success      201            {object}  createdResponse
// @Failure      400            {object}  messageResponse
// @Failure      403            {object}  messageResponse
// @Failure      500            {object}  messageResponse
// @Router       /auth/registeradmin [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(msgMissingFields, nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(msgMissingFields, err)
	}

	user, err := h.authService.RegisterAdmin(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return badRequest(msgMissingFields, nil)
		case errors.Is(err, domain.ErrUserExists):
			return badRequest("Usuário já cadastrado.", nil)
		}
		return internalError("Erro ao criar administrador", err)
	}

	return c.JSON(http.StatusCreated, createdResponse{Message: "Administrador criado com sucesso", ID: user.ID})
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(msgMissingFields, nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(msgMissingFields, err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return badRequest(msgMissingFields, nil)
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidCredentials):
			return badRequest(msgBadLogin, nil)
		case errors.Is(err, domain.ErrTooManyAttempts):
			return echo.NewHTTPError(http.StatusTooManyRequests, "Muitas tentativas de login. Tente novamente mais tarde.")
		}
		return internalError("Erro ao realizar login", err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
