package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vilinga/supermercado-api/internal/core/domain"
	"github.com/vilinga/supermercado-api/internal/core/ports"
)

const msgInvalidSale = "Preencha todos os campos corretamente. Produtos precisam ser informados."

// SaleHandler handles sale recording and listing.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

// Create handles POST /vendas. The clerk id is taken from the token.
//
// @Summary      Record a sale
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordSaleRequest  true  "Sale"
// @Success      201   {object}  saleCreatedResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /vendas [post]
func (h *SaleHandler) Create(c echo.Context) error {
	clerkID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req recordSaleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(msgInvalidSale, nil)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(msgInvalidSale, err)
	}

	items := make([]ports.LineItemInput, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, ports.LineItemInput{Name: p.Name, UnitPrice: p.UnitPrice, Quantity: p.Quantity})
	}

	result, err := h.service.Record(c.Request().Context(), ports.RecordSaleInput{
		ClerkID:  clerkID,
		Customer: req.Customer,
		Items:    items,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSale) {
			return badRequest(msgInvalidSale, &ValidationError{Fields: []string{err.Error()}})
		}
		return internalError("Erro ao registrar venda", err)
	}

	return c.JSON(http.StatusCreated, saleCreatedResponse{
		Message: "Venda registrada com sucesso",
		ID:      result.ID,
		Total:   result.Total,
	})
}

// List handles GET /vendas.
//
// @Summary      List all sales
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   saleResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /vendas [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context())
	if err != nil {
		return internalError("Erro ao listar as vendas", err)
	}

	resp := make([]saleResponse, 0, len(sales))
	for _, s := range sales {
		resp = append(resp, toSaleResponse(s))
	}
	return c.JSON(http.StatusOK, resp)
}

func toSaleResponse(s *domain.Sale) saleResponse {
	items := make([]lineItemResponse, 0, len(s.LineItems))
	for _, it := range s.LineItems {
		items = append(items, lineItemResponse{Name: it.Name, UnitPrice: it.UnitPrice, Quantity: it.Quantity})
	}
	return saleResponse{
		ID:         s.ID,
		Customer:   s.Customer,
		Products:   items,
		Total:      s.Total,
		RecordedBy: s.RecordedBy,
		RecordedAt: s.RecordedAt.UTC(),
	}
}
