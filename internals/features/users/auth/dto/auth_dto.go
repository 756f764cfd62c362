// file: internals/features/users/auth/dto/auth_dto.go
package dto

import "strings"

// LoginRequest: o formulário de login atende os dois papéis; o admin
// entra com usuário+senha, o aluno só com a matrícula.
type LoginRequest struct {
	UserType      string `form:"tipo_usuario" validate:"required,oneof=admin aluno"`
	LoginName     string `form:"usuario"`
	Password      string `form:"senha"`
	Matriculation string `form:"matricula"`
}

func (r *LoginRequest) Normalize() {
	r.UserType = strings.TrimSpace(r.UserType)
	r.LoginName = strings.TrimSpace(r.LoginName)
	r.Matriculation = strings.TrimSpace(r.Matriculation)
}

// RegisterRequest: auto-cadastro de administrador (/cadastro).
type RegisterRequest struct {
	FullName        string `form:"nome"            validate:"required"`
	LoginName       string `form:"usuario"         validate:"required"`
	Password        string `form:"senha"           validate:"required,min=6"`
	ConfirmPassword string `form:"confirmar_senha" validate:"eqfield=Password"`
}

func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.LoginName = strings.TrimSpace(r.LoginName)
}
