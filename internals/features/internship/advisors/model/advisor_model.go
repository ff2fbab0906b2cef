package model

import (
	"time"

	"github.com/google/uuid"
)

// AdvisorModel — docente asesor: acompaña prácticas, califica seguimientos,
// registra evaluaciones y actúa como jurado de sustentación.
type AdvisorModel struct {
	AdvisorID        uuid.UUID `json:"advisor_id" gorm:"column:advisor_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AdvisorUserID    uuid.UUID `json:"advisor_user_id" gorm:"column:advisor_user_id;type:uuid;uniqueIndex;not null"`
	AdvisorName      string    `json:"advisor_name" gorm:"column:advisor_name;size:200;not null"`
	AdvisorIDNumber  string    `json:"advisor_id_number,omitempty" gorm:"column:advisor_id_number;size:20;uniqueIndex"`
	AdvisorEmail     string    `json:"advisor_email" gorm:"column:advisor_email;size:120;not null"`
	AdvisorPhone     string    `json:"advisor_phone" gorm:"column:advisor_phone;size:20"`
	AdvisorSpecialty string    `json:"advisor_specialty" gorm:"column:advisor_specialty;size:200"`
	AdvisorPhotoURL  string    `json:"advisor_photo_url,omitempty" gorm:"column:advisor_photo_url"`
	AdvisorIsActive  bool      `json:"advisor_is_active" gorm:"column:advisor_is_active;not null;default:true"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (AdvisorModel) TableName() string {
	return "advisors"
}
