// file: internals/features/library/loans/controller/loans_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "biblioteca_backend/internals/features/library/books/model"
	"biblioteca_backend/internals/features/library/loans/dto"
	service "biblioteca_backend/internals/features/library/loans/service"
	studentModel "biblioteca_backend/internals/features/library/students/model"
	helper "biblioteca_backend/internals/helpers"
)

// histórico do aluno limitado como no sistema original
const historyLimit = 10

type LoansController struct {
	DB       *gorm.DB
	Validate *validator.Validate

	// Now é injetável para os testes congelarem o relógio.
	Now func() time.Time
}

func NewLoansController(db *gorm.DB) *LoansController {
	return &LoansController{DB: db, Validate: validator.New(), Now: time.Now}
}

func flashServiceError(c *fiber.Ctx, err error, location string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.FlashRedirect(c, fe.Message, location)
	}
	log.Printf("[LOANS][ERROR] %v", err)
	return helper.FlashRedirect(c, "Erro interno. Tente novamente.", location)
}

// GET /emprestimos — admin: ativos + formulário de novo empréstimo.
func (h *LoansController) Index(c *fiber.Ctx) error {
	today := h.Now()

	var students []studentModel.StudentModel
	if err := h.DB.Order("student_full_name ASC").Find(&students).Error; err != nil {
		log.Printf("[LOANS][ERROR] students: %v", err)
		return helper.FlashRedirect(c, "Erro ao carregar a página.", "/")
	}

	var available []bookModel.BookModel
	if err := h.DB.Where("book_quantity > 0").Order("book_title ASC").Find(&available).Error; err != nil {
		log.Printf("[LOANS][ERROR] books: %v", err)
		return helper.FlashRedirect(c, "Erro ao carregar a página.", "/")
	}

	active, err := service.ListActive(h.DB, today)
	if err != nil {
		log.Printf("[LOANS][ERROR] active: %v", err)
		return helper.FlashRedirect(c, "Erro ao carregar a página.", "/")
	}

	return helper.Render(c, "emprestimos", "Empréstimos", fiber.Map{
		"Students":       students,
		"AvailableBooks": available,
		"ActiveLoans":    active,
	})
}

// POST /fazer_emprestimo — admin
func (h *LoansController) Borrow(c *fiber.Ctx) error {
	var req dto.BorrowRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FlashRedirect(c, "Formulário inválido.", "/emprestimos")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FlashRedirect(c, "Escolha um usuário e um livro.", "/emprestimos")
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.FlashRedirect(c, "Escolha um usuário e um livro.", "/emprestimos")
	}
	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		return helper.FlashRedirect(c, "Escolha um usuário e um livro.", "/emprestimos")
	}

	if _, err := service.Borrow(h.DB, studentID, bookID, h.Now()); err != nil {
		return flashServiceError(c, err, "/emprestimos")
	}
	return helper.FlashRedirect(c, "Empréstimo realizado com sucesso!", "/emprestimos")
}

// POST /devolver_livro — admin
func (h *LoansController) Return(c *fiber.Ctx) error {
	var req dto.ReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FlashRedirect(c, "Formulário inválido.", "/emprestimos")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.FlashRedirect(c, "Empréstimo inválido.", "/emprestimos")
	}

	loanID, err := uuid.Parse(req.LoanID)
	if err != nil {
		return helper.FlashRedirect(c, "Empréstimo inválido.", "/emprestimos")
	}

	if _, err := service.Return(h.DB, loanID, h.Now()); err != nil {
		return flashServiceError(c, err, "/emprestimos")
	}
	return helper.FlashRedirect(c, "Livro devolvido!", "/emprestimos")
}

// GET /meus_emprestimos — aluno: ativos + histórico, restrito à
// matrícula da própria sessão.
func (h *LoansController) MyLoans(c *fiber.Ctx) error {
	today := h.Now()
	matriculation := helper.LocalString(c, helper.LocalMatricula)

	active, err := service.ListActiveForStudent(h.DB, matriculation, today)
	if err != nil {
		log.Printf("[LOANS][ERROR] my active: %v", err)
		return helper.FlashRedirect(c, "Erro ao carregar seus empréstimos.", "/")
	}
	history, err := service.ListHistoryForStudent(h.DB, matriculation, historyLimit)
	if err != nil {
		log.Printf("[LOANS][ERROR] my history: %v", err)
		return helper.FlashRedirect(c, "Erro ao carregar seus empréstimos.", "/")
	}

	return helper.Render(c, "meus_emprestimos", "Meus Empréstimos", fiber.Map{
		"ActiveLoans": active,
		"History":     history,
		"LoanLimit":   service.MaxActiveLoans,
		"PeriodDays":  service.LoanPeriodDays,
	})
}
