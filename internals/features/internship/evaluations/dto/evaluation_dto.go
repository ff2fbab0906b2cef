package dto

import (
	"time"

	"practicas_backend/internals/features/internship/evaluations/model"
)

// CreateEvaluationRequest — los cinco criterios se califican 0.0–5.0; la
// nota final es el promedio redondeado a un decimal.
type CreateEvaluationRequest struct {
	PlacementID string `json:"placement_id" validate:"required,uuid4"`
	Type        string `json:"type" validate:"required,oneof=partial final"`

	Technical  float64 `json:"technical_performance" validate:"min=0,max=5"`
	Objectives float64 `json:"objectives_fulfillment" validate:"min=0,max=5"`
	Teamwork   float64 `json:"teamwork" validate:"min=0,max=5"`
	Initiative float64 `json:"initiative" validate:"min=0,max=5"`
	Reporting  float64 `json:"report_quality" validate:"min=0,max=5"`

	Remarks string `json:"remarks" validate:"max=2000"`
}

type EvaluationResponse struct {
	EvaluationID string                 `json:"evaluation_id"`
	PlacementID  string                 `json:"placement_id"`
	Type         model.EvaluationType   `json:"type"`
	AdvisorID    string                 `json:"advisor_id"`
	Scores       map[string]interface{} `json:"scores"`
	FinalScore   float64                `json:"final_score"`
	Remarks      string                 `json:"remarks,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

func NewEvaluationResponse(e *model.EvaluationModel) EvaluationResponse {
	return EvaluationResponse{
		EvaluationID: e.EvaluationID.String(),
		PlacementID:  e.EvaluationPlacementID.String(),
		Type:         e.EvaluationType,
		AdvisorID:    e.EvaluationAdvisorID.String(),
		Scores:       e.EvaluationScores,
		FinalScore:   e.EvaluationFinalScore,
		Remarks:      e.EvaluationRemarks,
		CreatedAt:    e.CreatedAt,
	}
}
