package dto

import (
	"time"

	"practicas_backend/internals/features/internship/defenses/model"
)

type ScheduleDefenseRequest struct {
	PlacementID string    `json:"placement_id" validate:"required,uuid4"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Venue       string    `json:"venue" validate:"required,min=3,max=200"`
	Jury1ID     string    `json:"jury1_id" validate:"required,uuid4"`
	Jury2ID     string    `json:"jury2_id" validate:"required,uuid4"`
}

type ApproveDefenseRequest struct {
	Grade   float64 `json:"grade"` // rango validado en el controller
	Remarks string  `json:"remarks" validate:"max=2000"`
}

type CancelDefenseRequest struct {
	Reason string `json:"reason" validate:"required,min=10,max=2000"`
}

type DefenseResponse struct {
	DefenseID   string              `json:"defense_id"`
	PlacementID string              `json:"placement_id"`
	ScheduledAt time.Time           `json:"scheduled_at"`
	Venue       string              `json:"venue"`
	Jury1ID     string              `json:"jury1_id"`
	Jury2ID     string              `json:"jury2_id"`
	Status      model.DefenseStatus `json:"status"`
	Grade       *float64            `json:"grade,omitempty"`
	Remarks     string              `json:"remarks,omitempty"`
	MinutesURL  string              `json:"minutes_url,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func NewDefenseResponse(df *model.DefenseModel) DefenseResponse {
	return DefenseResponse{
		DefenseID:   df.DefenseID.String(),
		PlacementID: df.DefensePlacementID.String(),
		ScheduledAt: df.DefenseScheduledAt,
		Venue:       df.DefenseVenue,
		Jury1ID:     df.DefenseJury1ID.String(),
		Jury2ID:     df.DefenseJury2ID.String(),
		Status:      df.DefenseStatus,
		Grade:       df.DefenseGrade,
		Remarks:     df.DefenseRemarks,
		MinutesURL:  df.DefenseMinutesURL,
		CreatedAt:   df.CreatedAt,
	}
}
