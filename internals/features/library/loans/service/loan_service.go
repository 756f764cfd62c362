// file: internals/features/library/loans/service/loan_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "biblioteca_backend/internals/features/library/books/model"
	loanModel "biblioteca_backend/internals/features/library/loans/model"
	helper "biblioteca_backend/internals/helpers"
)

// Política fixa de empréstimo.
const (
	LoanPeriodDays = 7
	MaxActiveLoans = 3
)

var (
	ErrLoanLimitExceeded = fiber.NewError(fiber.StatusConflict, "Este usuário já tem 3 livros emprestados!")
	ErrBookUnavailable   = fiber.NewError(fiber.StatusConflict, "Este livro não está disponível!")
	ErrLoanNotFound      = fiber.NewError(fiber.StatusNotFound, "Empréstimo não encontrado!")
	ErrAlreadyReturned   = fiber.NewError(fiber.StatusConflict, "Este empréstimo já foi devolvido!")
)

// Borrow registra um empréstimo e consome um exemplar, tudo na mesma
// transação. Pré-condições na ordem do contrato: primeiro o limite por
// aluno, depois a disponibilidade do livro.
//
// A disponibilidade é consumida com UPDATE condicionado a quantity > 0 e
// conferida por RowsAffected; dois Borrow concorrentes do último exemplar
// nunca têm ambos sucesso, em qualquer backend.
func Borrow(db *gorm.DB, studentID, bookID uuid.UUID, today time.Time) (*loanModel.LoanModel, error) {
	today = helper.DateOnly(today)

	var loan *loanModel.LoanModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&loanModel.LoanModel{}).
			Where("loan_student_id = ? AND loan_status = ?", studentID, loanModel.LoanStatusBorrowed).
			Count(&active).Error; err != nil {
			return err
		}
		if active >= MaxActiveLoans {
			return ErrLoanLimitExceeded
		}

		res := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ? AND book_quantity > 0", bookID).
			UpdateColumn("book_quantity", gorm.Expr("book_quantity - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// livro inexistente ou sem exemplares
			return ErrBookUnavailable
		}

		loan = &loanModel.LoanModel{
			LoanStudentID:    studentID,
			LoanBookID:       bookID,
			LoanBorrowedDate: today,
			LoanDueDate:      today.AddDate(0, 0, LoanPeriodDays),
			LoanStatus:       loanModel.LoanStatusBorrowed,
		}
		return tx.Create(loan).Error
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// Return fecha um empréstimo e devolve o exemplar ao acervo. Um
// empréstimo já devolvido é rejeitado; sem isso a segunda devolução
// incrementaria a quantidade de novo e quebraria o invariante do estoque.
func Return(db *gorm.DB, loanID uuid.UUID, today time.Time) (*loanModel.LoanModel, error) {
	today = helper.DateOnly(today)

	var loan loanModel.LoanModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, "loan_id = ?", loanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLoanNotFound
			}
			return err
		}
		if loan.LoanStatus != loanModel.LoanStatusBorrowed {
			return ErrAlreadyReturned
		}

		loan.LoanStatus = loanModel.LoanStatusReturned
		loan.LoanReturnedDate = &today
		if err := tx.Model(&loanModel.LoanModel{}).
			Where("loan_id = ?", loan.LoanID).
			Updates(map[string]interface{}{
				"loan_status":        loanModel.LoanStatusReturned,
				"loan_returned_date": today,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", loan.LoanBookID).
			UpdateColumn("book_quantity", gorm.Expr("book_quantity + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}
