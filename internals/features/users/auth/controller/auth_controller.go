// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"biblioteca_backend/internals/constants"
	"biblioteca_backend/internals/features/users/auth/dto"
	service "biblioteca_backend/internals/features/users/auth/service"
	helper "biblioteca_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// flashError converte qualquer erro de serviço em aviso + redirect,
// sem vazar mensagens do driver para o usuário.
func flashError(c *fiber.Ctx, err error, location string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.FlashRedirect(c, fe.Message, location)
	}
	log.Printf("[AUTH][ERROR] %v", err)
	return helper.FlashRedirect(c, "Erro interno. Tente novamente.", location)
}

// GET /login
func (h *AuthController) LoginPage(c *fiber.Ctx) error {
	if helper.LocalString(c, helper.LocalUserRole) != "" {
		return c.Redirect("/", fiber.StatusFound)
	}
	return helper.Render(c, "login", "Login", nil)
}

// POST /login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FlashRedirect(c, "Formulário inválido.", "/login")
	}
	req.Normalize()

	var claims service.SessionClaims
	switch req.UserType {
	case "admin":
		admin, err := service.AuthenticateAdmin(h.DB, req.LoginName, req.Password)
		if err != nil {
			return flashError(c, err, "/login")
		}
		claims = service.SessionClaims{
			Role:    constants.RoleAdmin,
			Name:    admin.AdminFullName,
			AdminID: admin.AdminID.String(),
		}
	case "aluno":
		student, err := service.AuthenticateStudent(h.DB, req.Matriculation)
		if err != nil {
			return flashError(c, err, "/login")
		}
		claims = service.SessionClaims{
			Role:          constants.RoleStudent,
			Name:          student.StudentFullName,
			StudentID:     student.StudentID.String(),
			Matriculation: student.StudentMatriculation,
		}
	default:
		return helper.FlashRedirect(c, "Escolha o tipo de usuário.", "/login")
	}

	token, err := service.SignSessionToken(claims)
	if err != nil {
		return flashError(c, err, "/login")
	}
	service.SetSessionCookie(c, token)
	return helper.FlashRedirect(c, fmt.Sprintf("Bem-vindo, %s!", claims.Name), "/")
}

// GET /cadastro
func (h *AuthController) RegisterPage(c *fiber.Ctx) error {
	return helper.Render(c, "cadastro", "Cadastro", nil)
}

// POST /cadastro
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FlashRedirect(c, "Formulário inválido.", "/cadastro")
	}

	if _, err := service.RegisterAdmin(h.DB, req); err != nil {
		return flashError(c, err, "/cadastro")
	}
	return helper.FlashRedirect(c, "Administrador cadastrado! Faça login agora.", "/login")
}

// GET /sair
func (h *AuthController) Logout(c *fiber.Ctx) error {
	service.ClearSessionCookie(c)
	return helper.FlashRedirect(c, "Você saiu do sistema!", "/login")
}
