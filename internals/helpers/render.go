package helper

import (
	"github.com/gofiber/fiber/v2"

	"biblioteca_backend/internals/constants"
)

// Chaves de sessão gravadas em c.Locals pelo SessionMiddleware.
const (
	LocalUserRole  = "user_role"
	LocalUserName  = "user_name"
	LocalUserID    = "user_id"
	LocalMatricula = "matricula"
)

func LocalString(c *fiber.Ctx, key string) string {
	v, _ := c.Locals(key).(string)
	return v
}

// Render injeta os dados de sessão e o flash pendente em toda página.
func Render(c *fiber.Ctx, name, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	role := LocalString(c, LocalUserRole)
	data["Title"] = title
	data["Flash"] = TakeFlash(c)
	data["Role"] = role
	data["LoggedIn"] = role != ""
	data["IsAdmin"] = role == constants.RoleAdmin
	data["UserName"] = LocalString(c, LocalUserName)
	data["Matricula"] = LocalString(c, LocalMatricula)
	return c.Render(name, data)
}
