// file: internals/features/library/loans/dto/loan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   REQUEST (forms)
   ========================================================= */

type BorrowRequest struct {
	StudentID string `form:"usuario_id" validate:"required,uuid"`
	BookID    string `form:"livro_id"   validate:"required,uuid"`
}

type ReturnRequest struct {
	LoanID string `form:"emprestimo_id" validate:"required,uuid"`
}

/* =========================================================
   VIEW ROWS (joins somente leitura)
   ========================================================= */

// ActiveLoanRow: linha da tela de empréstimos ativos do admin.
type ActiveLoanRow struct {
	LoanID        uuid.UUID `gorm:"column:loan_id"`
	StudentName   string    `gorm:"column:student_name"`
	Matriculation string    `gorm:"column:matriculation"`
	BookTitle     string    `gorm:"column:book_title"`
	BookAuthor    string    `gorm:"column:book_author"`
	BorrowedDate  time.Time `gorm:"column:borrowed_date"`
	DueDate       time.Time `gorm:"column:due_date"`

	// calculado na consulta, nunca persistido
	Overdue bool `gorm:"-"`
}

// StudentLoanRow: visão do próprio aluno (ativos e histórico).
type StudentLoanRow struct {
	BookTitle    string     `gorm:"column:book_title"`
	BookAuthor   string     `gorm:"column:book_author"`
	BorrowedDate time.Time  `gorm:"column:borrowed_date"`
	DueDate      time.Time  `gorm:"column:due_date"`
	ReturnedDate *time.Time `gorm:"column:returned_date"`

	Overdue bool `gorm:"-"`
}

// OverdueLoanRow: relatório de atrasados do admin, ordenado por
// dias de atraso decrescente.
type OverdueLoanRow struct {
	StudentName   string    `gorm:"column:student_name"`
	Matriculation string    `gorm:"column:matriculation"`
	Course        *string   `gorm:"column:course"`
	BookTitle     string    `gorm:"column:book_title"`
	BorrowedDate  time.Time `gorm:"column:borrowed_date"`
	DueDate       time.Time `gorm:"column:due_date"`

	DaysOverdue int `gorm:"-"`
}
