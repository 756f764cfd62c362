// file: internals/seeds/seed.go
package seeds

import (
	"log"
	"time"

	"gorm.io/gorm"

	bookModel "biblioteca_backend/internals/features/library/books/model"
	loanService "biblioteca_backend/internals/features/library/loans/service"
	studentModel "biblioteca_backend/internals/features/library/students/model"
	authModel "biblioteca_backend/internals/features/users/auth/model"
	helper "biblioteca_backend/internals/helpers"
)

// Run garante o admin padrão e, num banco vazio, carrega dados de
// demonstração. Idempotente: rodar de novo não duplica nada.
func Run(db *gorm.DB) error {
	if err := ensureDefaultAdmin(db); err != nil {
		return err
	}
	return seedDemoData(db)
}

func ensureDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&authModel.AdministratorModel{}).
		Where("admin_login_name = ?", "admin").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := helper.HashPassword("admin123")
	if err != nil {
		return err
	}
	admin := &authModel.AdministratorModel{
		AdminFullName:     "Administrador",
		AdminLoginName:    "admin",
		AdminPasswordHash: hash,
	}
	if err := db.Create(admin).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil
		}
		return err
	}
	log.Println("[SEED] admin padrão criado (admin / admin123)")
	return nil
}

func intPtr(v int16) *int16 { return &v }
func strPtr(v string) *string { return &v }

func seedDemoData(db *gorm.DB) error {
	var books int64
	if err := db.Model(&bookModel.BookModel{}).Count(&books).Error; err != nil {
		return err
	}
	if books > 0 {
		return nil
	}

	demoBooks := []bookModel.BookModel{
		{BookTitle: "Dom Casmurro", BookAuthor: "Machado de Assis", BookISBN: strPtr("978-85-359-0277-5"), BookYear: intPtr(1899), BookQuantity: 3},
		{BookTitle: "O Cortiço", BookAuthor: "Aluísio Azevedo", BookISBN: strPtr("978-85-359-0278-2"), BookYear: intPtr(1890), BookQuantity: 2},
		{BookTitle: "Capitães da Areia", BookAuthor: "Jorge Amado", BookISBN: strPtr("978-85-359-0279-9"), BookYear: intPtr(1937), BookQuantity: 4},
		{BookTitle: "O Pequeno Príncipe", BookAuthor: "Antoine de Saint-Exupéry", BookISBN: strPtr("978-85-359-0280-5"), BookYear: intPtr(1943), BookQuantity: 5},
	}
	if err := db.Create(&demoBooks).Error; err != nil {
		return err
	}

	demoStudents := []studentModel.StudentModel{
		{StudentFullName: "João Silva", StudentMatriculation: "2023001", StudentCourse: strPtr("Engenharia")},
		{StudentFullName: "Maria Santos", StudentMatriculation: "2023002", StudentCourse: strPtr("Medicina")},
		{StudentFullName: "Pedro Costa", StudentMatriculation: "2023003", StudentCourse: strPtr("Direito")},
	}
	if err := db.Create(&demoStudents).Error; err != nil {
		return err
	}

	// um empréstimo de exemplo já com o estoque debitado pelo serviço
	if _, err := loanService.Borrow(db, demoStudents[0].StudentID, demoBooks[0].BookID, time.Now()); err != nil {
		return err
	}

	log.Printf("[SEED] dados de demonstração: %d livros, %d usuários, 1 empréstimo",
		len(demoBooks), len(demoStudents))
	return nil
}
