package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

func HasPermission(user *AppUser, permission string) bool {
	if user == nil {
		return false
	}
	return slices.Contains(user.Permissions, permission)
}

func HasAnyPermission(user *AppUser, permissions ...string) bool {
	if user == nil {
		return false
	}
	for _, permission := range permissions {
		if HasPermission(user, permission) {
			return true
		}
	}
	return false
}

func IsAdmin(user *AppUser) bool {
	if user == nil {
		return false
	}
	return user.Role == "admin"
}

// RequirePermission guards a route behind a single permission. Admins pass
// every permission check regardless of their claims.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return requirePermission(func(user *AppUser) bool {
		return HasPermission(user, permission)
	}, "Forbidden: missing permission "+permission)
}

// RequireAnyPermission guards a route reachable from several features, any
// one of the listed permissions grants access.
func RequireAnyPermission(permissions ...string) echo.MiddlewareFunc {
	return requirePermission(func(user *AppUser) bool {
		return HasAnyPermission(user, permissions...)
	}, "Forbidden: missing required permission")
}

func requirePermission(allowed func(*AppUser) bool, denied string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := c.(*AppContext).User
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			if !IsAdmin(user) && !allowed(user) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": denied})
			}

			return next(c)
		}
	}
}
