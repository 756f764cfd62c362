// file: internals/features/library/students/controller/students_controller.go
package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"biblioteca_backend/internals/features/library/students/dto"
	"biblioteca_backend/internals/features/library/students/model"
	helper "biblioteca_backend/internals/helpers"
)

type StudentsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentsController(db *gorm.DB) *StudentsController {
	return &StudentsController{DB: db, Validate: validator.New()}
}

// GET /usuarios — admin
func (h *StudentsController) Index(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := h.DB.Order("student_full_name ASC").Find(&students).Error; err != nil {
		log.Printf("[STUDENTS][ERROR] list: %v", err)
		return helper.FlashRedirect(c, "Erro ao carregar os usuários.", "/")
	}
	return helper.Render(c, "usuarios", "Usuários", fiber.Map{
		"Students": students,
	})
}

// POST /cadastrar_usuario — admin
func (h *StudentsController) Create(c *fiber.Ctx) error {
	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.FlashRedirect(c, "Formulário inválido.", "/usuarios")
	}
	req.Normalize()

	if err := h.Validate.Struct(req); err != nil {
		return helper.FlashRedirect(c, "Preencha nome e matrícula!", "/usuarios")
	}

	ent := req.ToModel()
	if err := h.DB.Create(ent).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.FlashRedirect(c, "Esta matrícula já existe!", "/usuarios")
		}
		log.Printf("[STUDENTS][ERROR] create: %v", err)
		return helper.FlashRedirect(c, "Erro ao cadastrar o usuário.", "/usuarios")
	}
	return helper.FlashRedirect(c, fmt.Sprintf("Usuário '%s' cadastrado com sucesso!", ent.StudentFullName), "/usuarios")
}
