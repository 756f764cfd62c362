package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"biblioteca_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem certa:
// recovery antes de tudo, depois logging e rate limit global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
