package helper

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookieName = "flash_notice"

// SetFlash grava um aviso transitório num cookie de curta duração.
// A próxima página renderizada consome e limpa o aviso (TakeFlash).
func SetFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// TakeFlash lê o aviso pendente (se houver) e limpa o cookie.
func TakeFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookieName)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

// FlashRedirect: aviso + redirect 303 (padrão pós-POST).
func FlashRedirect(c *fiber.Ctx, message, location string) error {
	SetFlash(c, message)
	return c.Redirect(location, fiber.StatusSeeOther)
}
