// file: internals/route/routes_test.go
package routes

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"biblioteca_backend/internals/configs"
	bookModel "biblioteca_backend/internals/features/library/books/model"
	loanModel "biblioteca_backend/internals/features/library/loans/model"
	studentModel "biblioteca_backend/internals/features/library/students/model"
	authDTO "biblioteca_backend/internals/features/users/auth/dto"
	authModel "biblioteca_backend/internals/features/users/auth/model"
	authService "biblioteca_backend/internals/features/users/auth/service"
	views "biblioteca_backend/internals/views"
)

var testDBSeq int64

// newTestApp sobe a aplicação completa (views reais, rotas reais) sobre
// um SQLite em memória, como o main faz com Postgres.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.SessionSecret = "segredo-de-teste"

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir banco de teste: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&authModel.AdministratorModel{},
		&bookModel.BookModel{},
		&studentModel.StudentModel{},
		&loanModel.LoanModel{},
	); err != nil {
		t.Fatalf("migrar banco de teste: %v", err)
	}

	app := fiber.New(fiber.Config{
		Views:                 views.Engine(),
		ViewsLayout:           "layouts/main",
		DisableStartupMessage: true,
	})
	SetupRoutes(app, db)
	return app, db
}

func seedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	_, err := authService.RegisterAdmin(db, authDTO.RegisterRequest{
		FullName:        "Administrador",
		LoginName:       "admin",
		Password:        "admin123",
		ConfirmPassword: "admin123",
	})
	if err != nil {
		t.Fatalf("criar admin: %v", err)
	}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, session *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("montar requisição: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func getPage(t *testing.T, app *fiber.App, path string, session *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("montar requisição: %v", err)
	}
	if session != nil {
		req.AddCookie(session)
	}
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == authService.SessionCookieName && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("cookie de sessão não foi emitido")
	return nil
}

func flashMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == "flash_notice" {
			msg, err := url.QueryUnescape(ck.Value)
			if err != nil {
				t.Fatalf("flash ilegível: %v", err)
			}
			return msg
		}
	}
	return ""
}

func loginAdmin(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp := postForm(t, app, "/login", url.Values{
		"tipo_usuario": {"admin"},
		"usuario":      {"admin"},
		"senha":        {"admin123"},
	}, nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login admin: status = %d", resp.StatusCode)
	}
	return sessionCookie(t, resp)
}

func loginStudent(t *testing.T, app *fiber.App, matriculation string) *http.Cookie {
	t.Helper()
	resp := postForm(t, app, "/login", url.Values{
		"tipo_usuario": {"aluno"},
		"matricula":    {matriculation},
	}, nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login aluno: status = %d", resp.StatusCode)
	}
	return sessionCookie(t, resp)
}

func TestFullLoanFlow(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	admin := loginAdmin(t, app)

	// cadastra um livro com exemplar único
	resp := postForm(t, app, "/cadastrar_livro", url.Values{
		"titulo":     {"Dom Casmurro"},
		"autor":      {"Machado de Assis"},
		"quantidade": {"1"},
	}, admin)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/livros" {
		t.Fatalf("cadastrar livro: status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	var book bookModel.BookModel
	if err := db.First(&book, "book_title = ?", "Dom Casmurro").Error; err != nil {
		t.Fatalf("livro não persistido: %v", err)
	}
	if book.BookQuantity != 1 {
		t.Fatalf("quantidade inicial = %d, want 1", book.BookQuantity)
	}

	// cadastra dois alunos
	for i, name := range []string{"João Silva", "Maria Santos"} {
		resp = postForm(t, app, "/cadastrar_usuario", url.Values{
			"nome":      {name},
			"matricula": {fmt.Sprintf("202300%d", i+1)},
		}, admin)
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("cadastrar usuário %q: status = %d", name, resp.StatusCode)
		}
	}
	var joao, maria studentModel.StudentModel
	if err := db.First(&joao, "student_matriculation = ?", "2023001").Error; err != nil {
		t.Fatalf("aluno não persistido: %v", err)
	}
	if err := db.First(&maria, "student_matriculation = ?", "2023002").Error; err != nil {
		t.Fatalf("aluno não persistido: %v", err)
	}

	// empresta o único exemplar
	resp = postForm(t, app, "/fazer_emprestimo", url.Values{
		"usuario_id": {joao.StudentID.String()},
		"livro_id":   {book.BookID.String()},
	}, admin)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("fazer empréstimo: status = %d", resp.StatusCode)
	}
	if msg := flashMessage(t, resp); msg != "Empréstimo realizado com sucesso!" {
		t.Fatalf("flash = %q", msg)
	}
	if err := db.First(&book, "book_id = ?", book.BookID).Error; err != nil {
		t.Fatalf("recarregar livro: %v", err)
	}
	if book.BookQuantity != 0 {
		t.Fatalf("quantidade após empréstimo = %d, want 0", book.BookQuantity)
	}

	// segundo empréstimo do mesmo livro falha
	resp = postForm(t, app, "/fazer_emprestimo", url.Values{
		"usuario_id": {maria.StudentID.String()},
		"livro_id":   {book.BookID.String()},
	}, admin)
	if msg := flashMessage(t, resp); msg != "Este livro não está disponível!" {
		t.Fatalf("flash = %q", msg)
	}
	var loans int64
	if err := db.Model(&loanModel.LoanModel{}).Count(&loans).Error; err != nil {
		t.Fatalf("contar empréstimos: %v", err)
	}
	if loans != 1 {
		t.Fatalf("empréstimos = %d, want 1", loans)
	}

	// devolução restaura o exemplar
	var loan loanModel.LoanModel
	if err := db.First(&loan).Error; err != nil {
		t.Fatalf("carregar empréstimo: %v", err)
	}
	resp = postForm(t, app, "/devolver_livro", url.Values{
		"emprestimo_id": {loan.LoanID.String()},
	}, admin)
	if msg := flashMessage(t, resp); msg != "Livro devolvido!" {
		t.Fatalf("flash = %q", msg)
	}
	if err := db.First(&book, "book_id = ?", book.BookID).Error; err != nil {
		t.Fatalf("recarregar livro: %v", err)
	}
	if book.BookQuantity != 1 {
		t.Fatalf("quantidade após devolução = %d, want 1", book.BookQuantity)
	}
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/", "/livros", "/emprestimos", "/relatorios", "/meus_emprestimos"} {
		resp := getPage(t, app, path, nil)
		if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/login" {
			t.Fatalf("GET %s: status = %d location = %q", path, resp.StatusCode, resp.Header.Get("Location"))
		}
	}
}

func TestStudentCannotUseAdminRoutes(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	student := &studentModel.StudentModel{
		StudentFullName:      "João Silva",
		StudentMatriculation: "2023001",
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("criar aluno: %v", err)
	}
	session := loginStudent(t, app, "2023001")

	resp := postForm(t, app, "/cadastrar_livro", url.Values{
		"titulo":     {"Livro Proibido"},
		"autor":      {"Ninguém"},
		"quantidade": {"1"},
	}, session)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	var books int64
	if err := db.Model(&bookModel.BookModel{}).Count(&books).Error; err != nil {
		t.Fatalf("contar livros: %v", err)
	}
	if books != 0 {
		t.Fatalf("livros criados = %d, want 0", books)
	}

	// página de empréstimos do admin também é barrada
	resp = getPage(t, app, "/emprestimos", session)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("GET /emprestimos: status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestStudentSeesOwnLoansPage(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	student := &studentModel.StudentModel{
		StudentFullName:      "João Silva",
		StudentMatriculation: "2023001",
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("criar aluno: %v", err)
	}
	session := loginStudent(t, app, "2023001")

	resp := getPage(t, app, "/meus_emprestimos", session)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /meus_emprestimos: status = %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ler resposta: %v", err)
	}
	if !strings.Contains(string(body), "Meus Empréstimos") {
		t.Fatal("página do aluno não renderizou o título esperado")
	}
}

func TestLoginWithWrongPassword(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	resp := postForm(t, app, "/login", url.Values{
		"tipo_usuario": {"admin"},
		"usuario":      {"admin"},
		"senha":        {"errada"},
	}, nil)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login" {
		t.Fatalf("status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if msg := flashMessage(t, resp); msg != "Usuário ou senha incorretos!" {
		t.Fatalf("flash = %q", msg)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == authService.SessionCookieName && ck.Value != "" {
			t.Fatal("cookie de sessão emitido para login inválido")
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	admin := loginAdmin(t, app)

	resp := getPage(t, app, "/sair", admin)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login" {
		t.Fatalf("GET /sair: status = %d location = %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	cleared := false
	for _, ck := range resp.Cookies() {
		if ck.Name == authService.SessionCookieName && ck.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("cookie de sessão não foi limpo")
	}
}

func TestHomeRendersPerRole(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	student := &studentModel.StudentModel{
		StudentFullName:      "João Silva",
		StudentMatriculation: "2023001",
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("criar aluno: %v", err)
	}

	admin := loginAdmin(t, app)
	resp := getPage(t, app, "/", admin)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home admin: status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Painel Administrativo") {
		t.Fatal("home do admin não renderizou o painel")
	}

	session := loginStudent(t, app, "2023001")
	resp = getPage(t, app, "/", session)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home aluno: status = %d", resp.StatusCode)
	}
	body, _ = io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Bem-vindo à Biblioteca") {
		t.Fatal("home do aluno não renderizou o painel")
	}
}
