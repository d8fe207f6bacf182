package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vilinga/supermercado-api/internal/core/domain"
)

// RBAC enforces role-based access control on the role injected by Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Lamentamos. Este tipo de usuário não tem permissão para esta operação.")
			}
			return next(c)
		}
	}
}
