package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "biblioteca_backend/internals/helpers"
)

// Global limiter: para todos os endpoints.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.FlashRedirect(c, "Muitas requisições. Tente novamente em instantes.", "/")
		},
	})
}

// Rate limiter para o login (mais restrito).
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.FlashRedirect(c, "Muitas tentativas de login. Aguarde um minuto.", "/login")
		},
	})
}

// Rate limiter para o cadastro de administradores.
func RegisterRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        3,
		Expiration: 5 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.FlashRedirect(c, "Muitas tentativas de cadastro. Aguarde alguns minutos.", "/login")
		},
	})
}
