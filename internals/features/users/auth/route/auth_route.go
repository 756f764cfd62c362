// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "biblioteca_backend/internals/features/users/auth/controller"
	rateLimiter "biblioteca_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// 🔓 público
	app.Get("/login", authController.LoginPage)
	app.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	app.Get("/cadastro", authController.RegisterPage)
	app.Post("/cadastro", rateLimiter.RegisterRateLimiter(), authController.Register)
	app.Get("/sair", authController.Logout)
}
