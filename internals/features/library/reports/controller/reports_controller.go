// file: internals/features/library/reports/controller/reports_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"biblioteca_backend/internals/constants"
	bookModel "biblioteca_backend/internals/features/library/books/model"
	loanModel "biblioteca_backend/internals/features/library/loans/model"
	loanService "biblioteca_backend/internals/features/library/loans/service"
	studentModel "biblioteca_backend/internals/features/library/students/model"
	helper "biblioteca_backend/internals/helpers"
)

type ReportsController struct {
	DB *gorm.DB

	Now func() time.Time
}

func NewReportsController(db *gorm.DB) *ReportsController {
	return &ReportsController{DB: db, Now: time.Now}
}

func (h *ReportsController) countBooks() (int64, error) {
	var n int64
	err := h.DB.Model(&bookModel.BookModel{}).Count(&n).Error
	return n, err
}

func (h *ReportsController) countAvailableBooks() (int64, error) {
	var n int64
	err := h.DB.Model(&bookModel.BookModel{}).Where("book_quantity > 0").Count(&n).Error
	return n, err
}

func (h *ReportsController) countStudents() (int64, error) {
	var n int64
	err := h.DB.Model(&studentModel.StudentModel{}).Count(&n).Error
	return n, err
}

// GET / — painel com estatísticas por papel.
func (h *ReportsController) Home(c *fiber.Ctx) error {
	today := h.Now()

	totalBooks, err := h.countBooks()
	if err != nil {
		return h.fail(c, err)
	}
	activeLoans, err := loanService.CountActive(h.DB)
	if err != nil {
		return h.fail(c, err)
	}

	if helper.LocalString(c, helper.LocalUserRole) == constants.RoleAdmin {
		totalStudents, err := h.countStudents()
		if err != nil {
			return h.fail(c, err)
		}
		overdue, err := loanService.CountOverdue(h.DB, today)
		if err != nil {
			return h.fail(c, err)
		}
		return helper.Render(c, "home_admin", "Sistema Biblioteca", fiber.Map{
			"TotalBooks":    totalBooks,
			"TotalStudents": totalStudents,
			"ActiveLoans":   activeLoans,
			"OverdueLoans":  overdue,
		})
	}

	available, err := h.countAvailableBooks()
	if err != nil {
		return h.fail(c, err)
	}
	var myLoans int64
	if matriculation := helper.LocalString(c, helper.LocalMatricula); matriculation != "" {
		err = h.DB.Model(&loanModel.LoanModel{}).
			Joins("JOIN usuarios u ON u.student_id = emprestimos.loan_student_id").
			Where("u.student_matriculation = ? AND emprestimos.loan_status = ?", matriculation, loanModel.LoanStatusBorrowed).
			Count(&myLoans).Error
		if err != nil {
			return h.fail(c, err)
		}
	}
	return helper.Render(c, "home_aluno", "Sistema Biblioteca", fiber.Map{
		"TotalBooks":     totalBooks,
		"AvailableBooks": available,
		"MyActiveLoans":  myLoans,
		"LoanLimit":      loanService.MaxActiveLoans,
	})
}

// GET /relatorios — admin vê emprestados, atrasados e disponíveis;
// aluno só os disponíveis.
func (h *ReportsController) Reports(c *fiber.Ctx) error {
	today := h.Now()

	var available []bookModel.BookModel
	if err := h.DB.Where("book_quantity > 0").Order("book_title ASC").Find(&available).Error; err != nil {
		return h.fail(c, err)
	}

	if helper.LocalString(c, helper.LocalUserRole) != constants.RoleAdmin {
		return helper.Render(c, "relatorios_aluno", "Relatórios", fiber.Map{
			"AvailableBooks": available,
		})
	}

	borrowed, err := loanService.ListActive(h.DB, today)
	if err != nil {
		return h.fail(c, err)
	}
	overdue, err := loanService.ListOverdueDetailed(h.DB, today)
	if err != nil {
		return h.fail(c, err)
	}
	return helper.Render(c, "relatorios_admin", "Relatórios", fiber.Map{
		"BorrowedLoans":  borrowed,
		"OverdueLoans":   overdue,
		"AvailableBooks": available,
	})
}

func (h *ReportsController) fail(c *fiber.Ctx, err error) error {
	log.Printf("[REPORTS][ERROR] %v", err)
	return helper.FlashRedirect(c, "Erro ao carregar os relatórios.", "/login")
}
