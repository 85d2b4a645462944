// Package auth implements the HTTP Basic authentication gate guarding
// mutating endpoints.
package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"papertrack/internal/model"
	"papertrack/internal/service"
)

const principalContextKey = "principal"

// Middleware verifies Basic credentials against stored password hashes and
// binds the resolved user to the request context as the principal.
func Middleware(users service.UserService) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: "papertrack",
		Validator: func(id, password string, c echo.Context) (bool, error) {
			user, err := users.Authenticate(c.Request().Context(), id, password)
			if err != nil {
				return false, nil
			}
			c.Set(principalContextKey, user)
			return true, nil
		},
	})
}

// Principal returns the authenticated user for the request, or nil when the
// request passed through no auth gate.
func Principal(c echo.Context) *model.User {
	user, _ := c.Get(principalContextKey).(*model.User)
	return user
}
