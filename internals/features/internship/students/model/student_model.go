package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentStatus string

const (
	StudentEligible   StudentStatus = "eligible"   // apto para práctica
	StudentPlaced     StudentStatus = "placed"     // en práctica
	StudentCompleted  StudentStatus = "completed"  // práctica finalizada
	StudentIneligible StudentStatus = "ineligible" // no apto (semestre insuficiente)
)

// StudentModel — estudiante candidato a práctica.
type StudentModel struct {
	StudentID      uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentUserID  uuid.UUID `json:"student_user_id" gorm:"column:student_user_id;type:uuid;uniqueIndex;not null"`
	StudentCode    string    `json:"student_code" gorm:"column:student_code;size:20;uniqueIndex;not null"`
	StudentName    string    `json:"student_name" gorm:"column:student_name;size:200;not null"`
	StudentEmail   string    `json:"student_email" gorm:"column:student_email;size:120;not null"`
	StudentPhone   string    `json:"student_phone" gorm:"column:student_phone;size:20"`
	StudentProgram string    `json:"student_program" gorm:"column:student_program;size:200;not null"`
	StudentTerm    int       `json:"student_term" gorm:"column:student_term;not null"`

	StudentPhotoURL string   `json:"student_photo_url,omitempty" gorm:"column:student_photo_url"`
	StudentCVURL    string   `json:"student_cv_url,omitempty" gorm:"column:student_cv_url"`
	StudentGPA      *float64 `json:"student_gpa,omitempty" gorm:"column:student_gpa;type:numeric(3,2)"`

	StudentStatus StudentStatus `json:"student_status" gorm:"column:student_status;size:20;not null;default:eligible"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
