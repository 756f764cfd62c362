// file: internals/middlewares/auth/guards.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"biblioteca_backend/internals/constants"
	helper "biblioteca_backend/internals/helpers"
)

// RequireAuthenticated: sem identidade na sessão -> volta para o login.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.LocalString(c, helper.LocalUserRole) == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireAdmin: só administradores; implica autenticado.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.LocalString(c, helper.LocalUserRole)
		if role == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if role != constants.RoleAdmin {
			return helper.FlashRedirect(c, constants.MsgAdminOnly, "/")
		}
		return c.Next()
	}
}

// RequireStudent: página exclusiva do aluno; admin é levado para a
// tela de empréstimos dele.
func RequireStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.LocalString(c, helper.LocalUserRole)
		if role == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if role != constants.RoleStudent {
			return c.Redirect("/emprestimos", fiber.StatusFound)
		}
		return c.Next()
	}
}
