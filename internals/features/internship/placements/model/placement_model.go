package model

import (
	"time"

	"github.com/google/uuid"
)

type PlacementStatus string

const (
	PlacementActive    PlacementStatus = "active"    // en curso
	PlacementFinalized PlacementStatus = "finalized" // terminal
	PlacementCancelled PlacementStatus = "cancelled" // terminal
)

// PlacementModel — práctica empresarial realizada: nace al vincular una
// postulación y cierra por finalización (checklist completo) o cancelación.
type PlacementModel struct {
	PlacementID          uuid.UUID  `json:"placement_id" gorm:"column:placement_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PlacementStudentID   uuid.UUID  `json:"placement_student_id" gorm:"column:placement_student_id;type:uuid;not null;index"`
	PlacementCompanyID   uuid.UUID  `json:"placement_company_id" gorm:"column:placement_company_id;type:uuid;not null;index"`
	PlacementVacancyID   *uuid.UUID `json:"placement_vacancy_id,omitempty" gorm:"column:placement_vacancy_id;type:uuid;index"`
	PlacementTutorID     *uuid.UUID `json:"placement_tutor_id,omitempty" gorm:"column:placement_tutor_id;type:uuid"`
	PlacementAdvisorID   *uuid.UUID `json:"placement_advisor_id,omitempty" gorm:"column:placement_advisor_id;type:uuid;index"`
	PlacementAssignedBy  uuid.UUID  `json:"placement_assigned_by" gorm:"column:placement_assigned_by;type:uuid;not null"`

	PlacementStartDate    time.Time  `json:"placement_start_date" gorm:"column:placement_start_date;type:date;not null"`
	PlacementEstEndDate   time.Time  `json:"placement_est_end_date" gorm:"column:placement_est_end_date;type:date;not null"`
	PlacementActualEnd    *time.Time `json:"placement_actual_end,omitempty" gorm:"column:placement_actual_end;type:date"`

	PlacementPlanDocURL   string `json:"placement_plan_doc_url,omitempty" gorm:"column:placement_plan_doc_url"`
	PlacementPlanApproved bool   `json:"placement_plan_approved" gorm:"column:placement_plan_approved;not null;default:false"`

	PlacementStatus       PlacementStatus `json:"placement_status" gorm:"column:placement_status;size:20;not null;default:active"`
	PlacementCancelReason string          `json:"placement_cancel_reason,omitempty" gorm:"column:placement_cancel_reason"`
	PlacementRemarks      string          `json:"placement_remarks,omitempty" gorm:"column:placement_remarks"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (PlacementModel) TableName() string {
	return "placements"
}
