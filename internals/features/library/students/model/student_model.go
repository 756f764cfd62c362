// file: internals/features/library/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID            uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`
	StudentFullName      string    `gorm:"type:text;not null;column:student_full_name" json:"student_full_name"`
	StudentMatriculation string    `gorm:"type:varchar(40);not null;uniqueIndex;column:student_matriculation" json:"student_matriculation"`
	StudentCourse        *string   `gorm:"type:text;column:student_course" json:"student_course,omitempty"`

	StudentCreatedAt time.Time `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
}

func (StudentModel) TableName() string { return "usuarios" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
