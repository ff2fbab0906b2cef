package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyTutorModel — tutor de la empresa que supervisa al estudiante.
type CompanyTutorModel struct {
	TutorID        uuid.UUID `json:"tutor_id" gorm:"column:tutor_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TutorCompanyID uuid.UUID `json:"tutor_company_id" gorm:"column:tutor_company_id;type:uuid;not null;index"`
	TutorName      string    `json:"tutor_name" gorm:"column:tutor_name;size:200;not null"`
	TutorTitle     string    `json:"tutor_title" gorm:"column:tutor_title;size:100"`
	TutorEmail     string    `json:"tutor_email" gorm:"column:tutor_email;size:120"`
	TutorPhone     string    `json:"tutor_phone" gorm:"column:tutor_phone;size:20"`
	TutorIsActive  bool      `json:"tutor_is_active" gorm:"column:tutor_is_active;not null;default:true"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (CompanyTutorModel) TableName() string {
	return "company_tutors"
}
