// file: internals/middlewares/auth/session_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	authService "biblioteca_backend/internals/features/users/auth/service"
	helper "biblioteca_backend/internals/helpers"
)

// SessionMiddleware resolve a identidade do cookie de sessão e grava em
// c.Locals. Nunca bloqueia: rota sem identidade segue anônima e os
// guards decidem o que fazer.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(authService.SessionCookieName)
		if token == "" {
			return c.Next()
		}
		claims, err := authService.ParseSessionToken(token)
		if err != nil {
			// cookie expirado/adulterado: descarta e segue anônimo
			authService.ClearSessionCookie(c)
			return c.Next()
		}

		c.Locals(helper.LocalUserRole, claims.Role)
		c.Locals(helper.LocalUserName, claims.Name)
		if claims.AdminID != "" {
			c.Locals(helper.LocalUserID, claims.AdminID)
		} else {
			c.Locals(helper.LocalUserID, claims.StudentID)
		}
		if claims.Matriculation != "" {
			c.Locals(helper.LocalMatricula, claims.Matriculation)
		}
		return c.Next()
	}
}
