// file: internals/features/library/loans/service/loan_queries.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"biblioteca_backend/internals/features/library/loans/dto"
	loanModel "biblioteca_backend/internals/features/library/loans/model"
	helper "biblioteca_backend/internals/helpers"
)

func CountActiveByStudent(db *gorm.DB, studentID uuid.UUID) (int64, error) {
	var n int64
	err := db.Model(&loanModel.LoanModel{}).
		Where("loan_student_id = ? AND loan_status = ?", studentID, loanModel.LoanStatusBorrowed).
		Count(&n).Error
	return n, err
}

func CountActive(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&loanModel.LoanModel{}).
		Where("loan_status = ?", loanModel.LoanStatusBorrowed).
		Count(&n).Error
	return n, err
}

func CountOverdue(db *gorm.DB, today time.Time) (int64, error) {
	var n int64
	err := db.Model(&loanModel.LoanModel{}).
		Where("loan_status = ? AND loan_due_date < ?", loanModel.LoanStatusBorrowed, helper.DateOnly(today)).
		Count(&n).Error
	return n, err
}

// ListActive: empréstimos em aberto com aluno e livro, mais recentes
// primeiro (tela /emprestimos e relatório do admin).
func ListActive(db *gorm.DB, today time.Time) ([]dto.ActiveLoanRow, error) {
	var rows []dto.ActiveLoanRow
	err := db.Table("emprestimos AS e").
		Select(`e.loan_id AS loan_id,
			u.student_full_name AS student_name,
			u.student_matriculation AS matriculation,
			l.book_title AS book_title,
			l.book_author AS book_author,
			e.loan_borrowed_date AS borrowed_date,
			e.loan_due_date AS due_date`).
		Joins("JOIN usuarios u ON u.student_id = e.loan_student_id").
		Joins("JOIN livros l ON l.book_id = e.loan_book_id").
		Where("e.loan_status = ?", loanModel.LoanStatusBorrowed).
		Order("e.loan_borrowed_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Overdue = helper.IsOverdue(rows[i].DueDate, today)
	}
	return rows, nil
}

// ListActiveForStudent: visão restrita à própria matrícula.
func ListActiveForStudent(db *gorm.DB, matriculation string, today time.Time) ([]dto.StudentLoanRow, error) {
	var rows []dto.StudentLoanRow
	err := db.Table("emprestimos AS e").
		Select(`l.book_title AS book_title,
			l.book_author AS book_author,
			e.loan_borrowed_date AS borrowed_date,
			e.loan_due_date AS due_date,
			e.loan_returned_date AS returned_date`).
		Joins("JOIN usuarios u ON u.student_id = e.loan_student_id").
		Joins("JOIN livros l ON l.book_id = e.loan_book_id").
		Where("u.student_matriculation = ? AND e.loan_status = ?", matriculation, loanModel.LoanStatusBorrowed).
		Order("e.loan_borrowed_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Overdue = helper.IsOverdue(rows[i].DueDate, today)
	}
	return rows, nil
}

// ListHistoryForStudent: devolvidos, mais recentes primeiro, limitado.
func ListHistoryForStudent(db *gorm.DB, matriculation string, limit int) ([]dto.StudentLoanRow, error) {
	var rows []dto.StudentLoanRow
	err := db.Table("emprestimos AS e").
		Select(`l.book_title AS book_title,
			l.book_author AS book_author,
			e.loan_borrowed_date AS borrowed_date,
			e.loan_due_date AS due_date,
			e.loan_returned_date AS returned_date`).
		Joins("JOIN usuarios u ON u.student_id = e.loan_student_id").
		Joins("JOIN livros l ON l.book_id = e.loan_book_id").
		Where("u.student_matriculation = ? AND e.loan_status = ?", matriculation, loanModel.LoanStatusReturned).
		Order("e.loan_returned_date DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ListOverdueDetailed: atrasados com aluno, curso e dias de atraso,
// do mais atrasado para o menos (vencimento mais antigo primeiro).
// Os dias são calculados na consulta, nunca armazenados.
func ListOverdueDetailed(db *gorm.DB, today time.Time) ([]dto.OverdueLoanRow, error) {
	var rows []dto.OverdueLoanRow
	err := db.Table("emprestimos AS e").
		Select(`u.student_full_name AS student_name,
			u.student_matriculation AS matriculation,
			u.student_course AS course,
			l.book_title AS book_title,
			e.loan_borrowed_date AS borrowed_date,
			e.loan_due_date AS due_date`).
		Joins("JOIN usuarios u ON u.student_id = e.loan_student_id").
		Joins("JOIN livros l ON l.book_id = e.loan_book_id").
		Where("e.loan_status = ? AND e.loan_due_date < ?", loanModel.LoanStatusBorrowed, helper.DateOnly(today)).
		Order("e.loan_due_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DaysOverdue = helper.DaysOverdue(rows[i].DueDate, today)
	}
	return rows, nil
}
