// file: internals/features/library/reports/route/reports_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "biblioteca_backend/internals/features/library/reports/controller"
	authmw "biblioteca_backend/internals/middlewares/auth"
)

func ReportsRoutes(app *fiber.App, db *gorm.DB) {
	reportsController := controller.NewReportsController(db)

	app.Get("/", authmw.RequireAuthenticated(), reportsController.Home)
	app.Get("/relatorios", authmw.RequireAuthenticated(), reportsController.Reports)
}
