package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EvaluationType string

const (
	EvaluationPartial EvaluationType = "partial"
	EvaluationFinal   EvaluationType = "final"
)

// Criterios evaluados (claves del JSONB de scores).
const (
	CriterionTechnical  = "technical_performance"
	CriterionObjectives = "objectives_fulfillment"
	CriterionTeamwork   = "teamwork"
	CriterionInitiative = "initiative"
	CriterionReporting  = "report_quality"
)

// EvaluationModel — evaluación de desempeño registrada por el docente asesor.
// El checklist de cierre exige al menos dos por práctica.
type EvaluationModel struct {
	EvaluationID          uuid.UUID      `json:"evaluation_id" gorm:"column:evaluation_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EvaluationPlacementID uuid.UUID      `json:"evaluation_placement_id" gorm:"column:evaluation_placement_id;type:uuid;not null;index"`
	EvaluationType        EvaluationType `json:"evaluation_type" gorm:"column:evaluation_type;size:20;not null"`
	EvaluationAdvisorID   uuid.UUID      `json:"evaluation_advisor_id" gorm:"column:evaluation_advisor_id;type:uuid;not null"`

	// Desglose por criterio (0.0–5.0 cada uno), JSONB.
	EvaluationScores     datatypes.JSONMap `json:"evaluation_scores" gorm:"column:evaluation_scores;type:jsonb"`
	EvaluationFinalScore float64           `json:"evaluation_final_score" gorm:"column:evaluation_final_score;type:numeric(3,1);not null"`
	EvaluationRemarks    string            `json:"evaluation_remarks,omitempty" gorm:"column:evaluation_remarks"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (EvaluationModel) TableName() string {
	return "evaluations"
}
