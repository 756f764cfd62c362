// file: internals/features/users/auth/model/administrator_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdministratorModel struct {
	AdminID        uuid.UUID `gorm:"type:uuid;primaryKey;column:admin_id" json:"admin_id"`
	AdminFullName  string    `gorm:"type:text;not null;column:admin_full_name" json:"admin_full_name"`
	AdminLoginName string    `gorm:"type:varchar(80);not null;uniqueIndex;column:admin_login_name" json:"admin_login_name"`

	// Hash bcrypt; nunca a senha em claro.
	AdminPasswordHash string `gorm:"type:text;not null;column:admin_password_hash" json:"-"`

	AdminCreatedAt time.Time `gorm:"autoCreateTime;column:admin_created_at" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"autoUpdateTime;column:admin_updated_at" json:"admin_updated_at"`
}

func (AdministratorModel) TableName() string { return "administradores" }

func (m *AdministratorModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
