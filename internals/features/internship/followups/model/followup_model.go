package model

import (
	"time"

	"github.com/google/uuid"
)

type FollowUpStatus string

const (
	FollowUpPending  FollowUpStatus = "pending"
	FollowUpApproved FollowUpStatus = "approved" // terminal (salvo la semana más reciente)
	FollowUpRejected FollowUpStatus = "rejected" // editable: vuelve a pending
)

// ApprovalThreshold: nota mínima para aprobar un seguimiento. La nota ES la
// transición: >= 3.0 aprueba, < 3.0 rechaza.
const ApprovalThreshold = 3.0

// WeeklyFollowUpModel — seguimiento semanal de una práctica. Una fila por
// (práctica, semana); el índice único respalda ErrDuplicateWeek.
type WeeklyFollowUpModel struct {
	FollowUpID          uuid.UUID `json:"followup_id" gorm:"column:followup_id;type:uuid;default:gen_random_uuid();primaryKey"`
	FollowUpPlacementID uuid.UUID `json:"followup_placement_id" gorm:"column:followup_placement_id;type:uuid;not null;uniqueIndex:uq_followup_placement_week"`
	FollowUpWeekNumber  int       `json:"followup_week_number" gorm:"column:followup_week_number;not null;uniqueIndex:uq_followup_placement_week"`

	FollowUpWeekStart time.Time `json:"followup_week_start" gorm:"column:followup_week_start;type:date;not null"`
	FollowUpWeekEnd   time.Time `json:"followup_week_end" gorm:"column:followup_week_end;type:date;not null"`

	FollowUpActivities   string `json:"followup_activities" gorm:"column:followup_activities;not null"`
	FollowUpAchievements string `json:"followup_achievements,omitempty" gorm:"column:followup_achievements"`
	FollowUpDifficulties string `json:"followup_difficulties,omitempty" gorm:"column:followup_difficulties"`
	FollowUpEvidenceURL  string `json:"followup_evidence_url,omitempty" gorm:"column:followup_evidence_url"`

	FollowUpStatus         FollowUpStatus `json:"followup_status" gorm:"column:followup_status;size:20;not null;default:pending"`
	FollowUpGrade          *float64       `json:"followup_grade,omitempty" gorm:"column:followup_grade;type:numeric(3,1)"`
	FollowUpTutorRemarks   string         `json:"followup_tutor_remarks,omitempty" gorm:"column:followup_tutor_remarks"`
	FollowUpAdvisorRemarks string         `json:"followup_advisor_remarks,omitempty" gorm:"column:followup_advisor_remarks"`
	FollowUpReviewedAt     *time.Time     `json:"followup_reviewed_at,omitempty" gorm:"column:followup_reviewed_at"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (WeeklyFollowUpModel) TableName() string {
	return "weekly_followups"
}

// StatusForGrade aplica la regla nota-determina-estado.
func StatusForGrade(grade float64) FollowUpStatus {
	if grade >= ApprovalThreshold {
		return FollowUpApproved
	}
	return FollowUpRejected
}
