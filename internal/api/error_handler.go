package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vilinga/supermercado-api/internal/api/handler"
	"github.com/vilinga/supermercado-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders handler errors with their status and message.
//   - Maps stray domain errors to their HTTP status codes.
//   - Logs 5xx causes internally without leaking them to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err)
		if code >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp := errorResponse{Message: fmt.Sprintf("%v", he.Message)}
		var ve *handler.ValidationError
		if errors.As(he.Internal, &ve) {
			resp.Details = ve.Fields
		}
		return he.Code, resp
	}

	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, errorResponse{Message: "Não autorizado."}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Message: "Usuário não encontrado."}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, errorResponse{Message: "Usuário já cadastrado."}
	case errors.Is(err, domain.ErrMissingFields), errors.Is(err, domain.ErrInvalidSale):
		return http.StatusBadRequest, errorResponse{Message: "Preencha todos os campos."}
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, errorResponse{Message: "Muitas tentativas. Tente novamente mais tarde."}
	}

	return http.StatusInternalServerError, errorResponse{Message: "Erro interno do servidor"}
}
