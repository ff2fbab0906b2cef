package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel — cuenta de acceso. entity_id apunta al registro de
// estudiante/docente/coordinador según el rol.
type UserModel struct {
	UserID       uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserEmail    string     `json:"user_email" gorm:"column:user_email;size:120;uniqueIndex;not null"`
	UserPassword string     `json:"-" gorm:"column:user_password;size:100"`
	UserRole     string     `json:"user_role" gorm:"column:user_role;size:20;not null;default:student"`
	UserEntityID *uuid.UUID `json:"user_entity_id,omitempty" gorm:"column:user_entity_id;type:uuid"`
	UserIsActive bool       `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`
	UserGoogleID string     `json:"-" gorm:"column:user_google_id;size:64;index"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
