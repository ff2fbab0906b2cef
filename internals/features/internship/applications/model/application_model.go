package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted" // postulado
	ApplicationSelected  ApplicationStatus = "selected"  // seleccionado por la empresa
	ApplicationRejected  ApplicationStatus = "rejected"  // terminal
	ApplicationLinked    ApplicationStatus = "linked"    // vinculado, terminal
)

// ApplicationModel — postulación de un estudiante a una vacante.
// El par (vacante, estudiante) es único sin importar el estado; el índice
// único respalda la detección de duplicados bajo concurrencia.
type ApplicationModel struct {
	ApplicationID          uuid.UUID `json:"application_id" gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ApplicationVacancyID   uuid.UUID `json:"application_vacancy_id" gorm:"column:application_vacancy_id;type:uuid;not null;uniqueIndex:uq_application_vacancy_student"`
	ApplicationStudentID   uuid.UUID `json:"application_student_id" gorm:"column:application_student_id;type:uuid;not null;uniqueIndex:uq_application_vacancy_student;index"`
	ApplicationSubmittedBy uuid.UUID `json:"application_submitted_by" gorm:"column:application_submitted_by;type:uuid;not null"`

	ApplicationStatus      ApplicationStatus `json:"application_status" gorm:"column:application_status;size:20;not null;default:submitted"`
	ApplicationRespondedAt *time.Time        `json:"application_responded_at,omitempty" gorm:"column:application_responded_at"`
	ApplicationRemarks     string            `json:"application_remarks,omitempty" gorm:"column:application_remarks"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (ApplicationModel) TableName() string {
	return "applications"
}

// IsTerminal: rejected y linked no admiten más transiciones.
func (a *ApplicationModel) IsTerminal() bool {
	return a.ApplicationStatus == ApplicationRejected || a.ApplicationStatus == ApplicationLinked
}
