// file: internals/features/library/books/controller/books_controller.go
package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"biblioteca_backend/internals/features/library/books/dto"
	"biblioteca_backend/internals/features/library/books/model"
	helper "biblioteca_backend/internals/helpers"
)

type BooksController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBooksController(db *gorm.DB) *BooksController {
	return &BooksController{DB: db, Validate: validator.New()}
}

// GET /livros — lista para qualquer papel; o formulário de cadastro só
// aparece para admin (decidido no template).
func (h *BooksController) Index(c *fiber.Ctx) error {
	var books []model.BookModel
	if err := h.DB.Order("book_title ASC").Find(&books).Error; err != nil {
		log.Printf("[BOOKS][ERROR] list: %v", err)
		return helper.FlashRedirect(c, "Erro ao carregar os livros.", "/")
	}
	return helper.Render(c, "livros", "Livros", fiber.Map{
		"Books": books,
	})
}

// POST /cadastrar_livro — admin
func (h *BooksController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FlashRedirect(c, "Formulário inválido.", "/livros")
	}
	req.Normalize()

	if err := h.Validate.Struct(req); err != nil {
		return helper.FlashRedirect(c, "Preencha título e autor do livro!", "/livros")
	}

	ent := req.ToModel()
	if err := h.DB.Create(ent).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.FlashRedirect(c, "Este ISBN já existe!", "/livros")
		}
		log.Printf("[BOOKS][ERROR] create: %v", err)
		return helper.FlashRedirect(c, "Erro ao cadastrar o livro.", "/livros")
	}
	return helper.FlashRedirect(c, fmt.Sprintf("Livro '%s' cadastrado com sucesso!", ent.BookTitle), "/livros")
}
