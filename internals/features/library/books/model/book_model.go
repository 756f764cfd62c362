// file: internals/features/library/books/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookModel struct {
	BookID     uuid.UUID `gorm:"type:uuid;primaryKey;column:book_id" json:"book_id"`
	BookTitle  string    `gorm:"type:text;not null;column:book_title" json:"book_title"`
	BookAuthor string    `gorm:"type:text;not null;column:book_author" json:"book_author"`
	BookISBN   *string   `gorm:"type:varchar(32);uniqueIndex;column:book_isbn" json:"book_isbn,omitempty"`
	BookYear   *int16    `gorm:"type:smallint;column:book_year" json:"book_year,omitempty"`

	// Exemplares disponíveis para empréstimo (não o acervo total).
	BookQuantity int `gorm:"not null;default:1;check:chk_book_quantity,book_quantity >= 0;column:book_quantity" json:"book_quantity"`

	BookCreatedAt time.Time `gorm:"autoCreateTime;column:book_created_at" json:"book_created_at"`
	BookUpdatedAt time.Time `gorm:"autoUpdateTime;column:book_updated_at" json:"book_updated_at"`
}

func (BookModel) TableName() string { return "livros" }

func (m *BookModel) BeforeCreate(tx *gorm.DB) error {
	if m.BookID == uuid.Nil {
		m.BookID = uuid.New()
	}
	return nil
}
