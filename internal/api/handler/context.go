package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vilinga/supermercado-api/internal/api/middleware"
	"github.com/vilinga/supermercado-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware. An
// empty user id or role means the middleware did not run, which is a 401.
func ctxClaims(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get(middleware.ContextKeyUserID).(string)
	r, _ := c.Get(middleware.ContextKeyRole).(string)
	if userID == "" || r == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado.")
	}
	return userID, domain.Role(r), nil
}

// internalError builds a 500 whose cause is logged by the error handler and
// never rendered.
func internalError(msg string, cause error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, msg).SetInternal(cause)
}

// badRequest builds a 400; a *ValidationError cause is rendered as details.
func badRequest(msg string, cause error) error {
	he := echo.NewHTTPError(http.StatusBadRequest, msg)
	if cause != nil {
		he = he.SetInternal(cause)
	}
	return he
}
