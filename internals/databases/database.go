package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"biblioteca_backend/internals/configs"
	bookModel "biblioteca_backend/internals/features/library/books/model"
	loanModel "biblioteca_backend/internals/features/library/loans/model"
	studentModel "biblioteca_backend/internals/features/library/students/model"
	adminModel "biblioteca_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=biblioteca&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ DB conectado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate cria/atualiza as quatro tabelas do sistema.
func Migrate() {
	if err := DB.AutoMigrate(
		&adminModel.AdministratorModel{},
		&studentModel.StudentModel{},
		&bookModel.BookModel{},
		&loanModel.LoanModel{},
	); err != nil {
		log.Fatalf("❌ Falha na migração: %v", err)
	}
	log.Println("✅ Migração concluída.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
