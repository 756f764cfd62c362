// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "biblioteca_backend/internals/features/library/students/model"
	"biblioteca_backend/internals/features/users/auth/dto"
	authModel "biblioteca_backend/internals/features/users/auth/model"
	helper "biblioteca_backend/internals/helpers"
)

var validate = validator.New()

var (
	ErrInvalidCredentials   = fiber.NewError(fiber.StatusUnauthorized, "Usuário ou senha incorretos!")
	ErrUnknownMatriculation = fiber.NewError(fiber.StatusUnauthorized, "Matrícula não encontrada!")
	ErrDuplicateLoginName   = fiber.NewError(fiber.StatusConflict, "Este nome de usuário já existe!")
)

// RegisterAdmin: auto-cadastro público de administrador. Valida o
// formulário, guarda a senha como hash bcrypt e trata o nome de login
// duplicado como conflito.
func RegisterAdmin(db *gorm.DB, req dto.RegisterRequest) (*authModel.AdministratorModel, error) {
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		return nil, registerValidationError(err)
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao processar a senha")
	}

	admin := &authModel.AdministratorModel{
		AdminFullName:     req.FullName,
		AdminLoginName:    req.LoginName,
		AdminPasswordHash: hash,
	}
	if err := db.Create(admin).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, ErrDuplicateLoginName
		}
		return nil, err
	}
	return admin, nil
}

// registerValidationError traduz o primeiro erro do validator para a
// mensagem da tela de cadastro.
func registerValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Dados inválidos")
	}
	fe := ve[0]
	switch {
	case fe.Tag() == "required":
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Preencha todos os campos!")
	case fe.Field() == "Password" && fe.Tag() == "min":
		return fiber.NewError(fiber.StatusUnprocessableEntity, "A senha deve ter pelo menos 6 caracteres!")
	case fe.Tag() == "eqfield":
		return fiber.NewError(fiber.StatusUnprocessableEntity, "As senhas não são iguais!")
	default:
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Dados inválidos")
	}
}

// AuthenticateAdmin confere login e senha (bcrypt). A mensagem de erro
// não distingue login inexistente de senha errada.
func AuthenticateAdmin(db *gorm.DB, loginName, password string) (*authModel.AdministratorModel, error) {
	var admin authModel.AdministratorModel
	if err := db.First(&admin, "admin_login_name = ?", loginName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := helper.CheckPasswordHash(admin.AdminPasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

// AuthenticateStudent: aluno entra só com a matrícula.
func AuthenticateStudent(db *gorm.DB, matriculation string) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	if err := db.First(&student, "student_matriculation = ?", matriculation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownMatriculation
		}
		return nil, err
	}
	return &student, nil
}
