package dto

import (
	"time"

	"practicas_backend/internals/features/internship/followups/model"
)

type CreateFollowUpRequest struct {
	PlacementID  string    `json:"placement_id" validate:"required,uuid4"`
	WeekNumber   int       `json:"week_number" validate:"required,min=1,max=52"`
	WeekStart    time.Time `json:"week_start" validate:"required"`
	WeekEnd      time.Time `json:"week_end" validate:"required,gtfield=WeekStart"`
	Activities   string    `json:"activities" validate:"required,min=10,max=5000"`
	Achievements string    `json:"achievements" validate:"max=5000"`
	Difficulties string    `json:"difficulties" validate:"max=5000"`
}

type UpdateFollowUpRequest struct {
	Activities   string `json:"activities" validate:"omitempty,min=10,max=5000"`
	Achievements string `json:"achievements" validate:"max=5000"`
	Difficulties string `json:"difficulties" validate:"max=5000"`
}

type GradeFollowUpRequest struct {
	Grade   float64 `json:"grade"` // rango validado en el controller para responder INVALID_SCORE
	Remarks string  `json:"remarks" validate:"max=2000"`
}

type FollowUpResponse struct {
	FollowUpID   string `json:"followup_id"`
	PlacementID  string `json:"placement_id"`
	WeekNumber   int    `json:"week_number"`
	WeekStart    string `json:"week_start"`
	WeekEnd      string `json:"week_end"`
	Activities   string `json:"activities"`
	Achievements string `json:"achievements,omitempty"`
	Difficulties string `json:"difficulties,omitempty"`
	EvidenceURL  string `json:"evidence_url,omitempty"`

	Status         model.FollowUpStatus `json:"status"`
	Grade          *float64             `json:"grade,omitempty"`
	TutorRemarks   string               `json:"tutor_remarks,omitempty"`
	AdvisorRemarks string               `json:"advisor_remarks,omitempty"`
	ReviewedAt     *time.Time           `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

func NewFollowUpResponse(f *model.WeeklyFollowUpModel) FollowUpResponse {
	return FollowUpResponse{
		FollowUpID:     f.FollowUpID.String(),
		PlacementID:    f.FollowUpPlacementID.String(),
		WeekNumber:     f.FollowUpWeekNumber,
		WeekStart:      f.FollowUpWeekStart.Format("2006-01-02"),
		WeekEnd:        f.FollowUpWeekEnd.Format("2006-01-02"),
		Activities:     f.FollowUpActivities,
		Achievements:   f.FollowUpAchievements,
		Difficulties:   f.FollowUpDifficulties,
		EvidenceURL:    f.FollowUpEvidenceURL,
		Status:         f.FollowUpStatus,
		Grade:          f.FollowUpGrade,
		TutorRemarks:   f.FollowUpTutorRemarks,
		AdvisorRemarks: f.FollowUpAdvisorRemarks,
		ReviewedAt:     f.FollowUpReviewedAt,
		CreatedAt:      f.CreatedAt,
	}
}
