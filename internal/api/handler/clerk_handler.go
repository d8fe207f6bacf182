package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
)

// ClerkHandler exposes clerk (balconista) management to administrators.
type ClerkHandler struct {
	service ports.ClerkService
}

func NewClerkHandler(service ports.ClerkService) *ClerkHandler {
	return &ClerkHandler{service: service}
}

// Create handles POST /balconistas.
//
// @Summary      Create a clerk
// @Tags         balconistas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Clerk details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /balconistas [post]
func (h *ClerkHandler) Create(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(msgMissingFields, nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(msgMissingFields, err)
	}

	user, err := h.service.Create(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return badRequest(msgMissingFields, nil)
		case errors.Is(err, domain.ErrUserExists):
			return badRequest("Balconista já cadastrado.", nil)
		}
		return internalError("Erro ao criar balconista", err)
	}

	return c.JSON(http.StatusCreated, createdResponse{Message: "Balconista criado com sucesso", ID: user.ID})
}

// List handles GET /balconistas.
//
// @Summary      List clerks
// @Tags         balconistas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   clerkResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /balconistas [get]
func (h *ClerkHandler) List(c echo.Context) error {
	clerks, err := h.service.List(c.Request().Context())
	if err != nil {
		return internalError("Erro ao listar balconistas", err)
	}

	resp := make([]clerkResponse, 0, len(clerks))
	for _, u := range clerks {
		resp = append(resp, clerkResponse{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /balconistas/:id.
//
// @Summary      Delete a clerk
// @Tags         balconistas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Clerk id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /balconistas/{id} [delete]
func (h *ClerkHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Balconista não encontrado.")
		}
		return internalError("Erro ao excluir balconista", err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Balconista excluído com sucesso."})
}
