// file: internals/features/library/loans/model/loan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estados do ciclo de vida de um empréstimo. A transição é única e
// terminal: borrowed -> returned.
const (
	LoanStatusBorrowed = "borrowed"
	LoanStatusReturned = "returned"
)

type LoanModel struct {
	LoanID        uuid.UUID `gorm:"type:uuid;primaryKey;column:loan_id" json:"loan_id"`
	LoanStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:loan_student_id" json:"loan_student_id"`
	LoanBookID    uuid.UUID `gorm:"type:uuid;not null;index;column:loan_book_id" json:"loan_book_id"`

	LoanBorrowedDate time.Time  `gorm:"type:date;not null;column:loan_borrowed_date" json:"loan_borrowed_date"`
	LoanDueDate      time.Time  `gorm:"type:date;not null;column:loan_due_date" json:"loan_due_date"`
	LoanReturnedDate *time.Time `gorm:"type:date;column:loan_returned_date" json:"loan_returned_date,omitempty"`

	LoanStatus string `gorm:"type:varchar(16);not null;default:borrowed;index;column:loan_status" json:"loan_status"`

	LoanCreatedAt time.Time `gorm:"autoCreateTime;column:loan_created_at" json:"loan_created_at"`
	LoanUpdatedAt time.Time `gorm:"autoUpdateTime;column:loan_updated_at" json:"loan_updated_at"`
}

func (LoanModel) TableName() string { return "emprestimos" }

func (m *LoanModel) BeforeCreate(tx *gorm.DB) error {
	if m.LoanID == uuid.Nil {
		m.LoanID = uuid.New()
	}
	return nil
}
