package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vilinga/supermercado-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

const unauthorizedMessage = "Não autorizado."

// Auth validates the bearer token and injects its claims into the context.
// Every failure yields the same 401; the verification error is only logged.
func Auth(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, string(claims.Role))

			return next(c)
		}
	}
}
