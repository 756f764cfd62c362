// file: internals/features/library/books/dto/book_dto.go
package dto

import (
	"strings"

	model "biblioteca_backend/internals/features/library/books/model"
)

type BookCreateRequest struct {
	Title    string `form:"titulo"     validate:"required"`
	Author   string `form:"autor"      validate:"required"`
	ISBN     string `form:"isbn"       validate:"omitempty,max=32"`
	Year     *int16 `form:"ano"        validate:"omitempty,gte=1800,lte=2100"`
	Quantity int    `form:"quantidade" validate:"gte=1"`
}

func (r *BookCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.ISBN = strings.TrimSpace(r.ISBN)
	if r.Quantity == 0 {
		r.Quantity = 1
	}
}

func (r *BookCreateRequest) ToModel() *model.BookModel {
	ent := &model.BookModel{
		BookTitle:    r.Title,
		BookAuthor:   r.Author,
		BookYear:     r.Year,
		BookQuantity: r.Quantity,
	}
	if r.ISBN != "" {
		isbn := r.ISBN
		ent.BookISBN = &isbn
	}
	return ent
}
