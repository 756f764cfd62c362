// file: internals/features/library/books/route/books_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "biblioteca_backend/internals/features/library/books/controller"
	authmw "biblioteca_backend/internals/middlewares/auth"
)

func BooksRoutes(app *fiber.App, db *gorm.DB) {
	booksController := controller.NewBooksController(db)

	app.Get("/livros", authmw.RequireAuthenticated(), booksController.Index)
	app.Post("/cadastrar_livro", authmw.RequireAdmin(), booksController.Create)
}
