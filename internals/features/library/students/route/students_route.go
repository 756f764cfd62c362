// file: internals/features/library/students/route/students_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "biblioteca_backend/internals/features/library/students/controller"
	authmw "biblioteca_backend/internals/middlewares/auth"
)

func StudentsRoutes(app *fiber.App, db *gorm.DB) {
	studentsController := controller.NewStudentsController(db)

	app.Get("/usuarios", authmw.RequireAdmin(), studentsController.Index)
	app.Post("/cadastrar_usuario", authmw.RequireAdmin(), studentsController.Create)
}
