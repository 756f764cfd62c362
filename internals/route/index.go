// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	booksRoute "biblioteca_backend/internals/features/library/books/route"
	loansRoute "biblioteca_backend/internals/features/library/loans/route"
	reportsRoute "biblioteca_backend/internals/features/library/reports/route"
	studentsRoute "biblioteca_backend/internals/features/library/students/route"
	authRoute "biblioteca_backend/internals/features/users/auth/route"
	authmw "biblioteca_backend/internals/middlewares/auth"
)

// SetupRoutes: resolve a sessão antes de tudo; cada feature aplica o
// guard que precisa (autenticado / admin / aluno).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(authmw.SessionMiddleware())

	authRoute.AuthRoutes(app, db)
	reportsRoute.ReportsRoutes(app, db)
	booksRoute.BooksRoutes(app, db)
	studentsRoute.StudentsRoutes(app, db)
	loansRoute.LoansRoutes(app, db)
}
