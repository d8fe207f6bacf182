package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderSetupToken carries the bootstrap secret for admin registration.
const HeaderSetupToken = "X-Setup-Token"

// SetupToken gates a route behind a shared bootstrap secret. An empty token
// disables the gate.
func SetupToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if token == "" {
			return next
		}
		return func(c echo.Context) error {
			got := c.Request().Header.Get(HeaderSetupToken)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				return echo.NewHTTPError(http.StatusForbidden, "Token de configuração inválido.")
			}
			return next(c)
		}
	}
}
