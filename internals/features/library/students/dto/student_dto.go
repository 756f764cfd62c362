// file: internals/features/library/students/dto/student_dto.go
package dto

import (
	"strings"

	model "biblioteca_backend/internals/features/library/students/model"
)

type StudentCreateRequest struct {
	FullName      string `form:"nome"      validate:"required"`
	Matriculation string `form:"matricula" validate:"required,max=40"`
	Course        string `form:"curso"     validate:"omitempty"`
}

func (r *StudentCreateRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Matriculation = strings.TrimSpace(r.Matriculation)
	r.Course = strings.TrimSpace(r.Course)
}

func (r *StudentCreateRequest) ToModel() *model.StudentModel {
	ent := &model.StudentModel{
		StudentFullName:      r.FullName,
		StudentMatriculation: r.Matriculation,
	}
	if r.Course != "" {
		course := r.Course
		ent.StudentCourse = &course
	}
	return ent
}
