// file: internals/features/library/loans/route/loans_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "biblioteca_backend/internals/features/library/loans/controller"
	authmw "biblioteca_backend/internals/middlewares/auth"
)

func LoansRoutes(app *fiber.App, db *gorm.DB) {
	loansController := controller.NewLoansController(db)

	app.Get("/emprestimos", authmw.RequireAdmin(), loansController.Index)
	app.Post("/fazer_emprestimo", authmw.RequireAdmin(), loansController.Borrow)
	app.Post("/devolver_livro", authmw.RequireAdmin(), loansController.Return)

	app.Get("/meus_emprestimos", authmw.RequireStudent(), loansController.MyLoans)
}
