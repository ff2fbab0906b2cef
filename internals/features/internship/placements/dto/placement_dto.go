package dto

import (
	"time"

	"practicas_backend/internals/features/internship/placements/model"
)

type CancelPlacementRequest struct {
	Reason string `json:"reason" validate:"required,min=20,max=2000"`
}

type PlacementResponse struct {
	PlacementID  string  `json:"placement_id"`
	StudentID    string  `json:"student_id"`
	CompanyID    string  `json:"company_id"`
	VacancyID    *string `json:"vacancy_id,omitempty"`
	TutorID      *string `json:"tutor_id,omitempty"`
	AdvisorID    *string `json:"advisor_id,omitempty"`
	StartDate    string  `json:"start_date"`
	EstEndDate   string  `json:"est_end_date"`
	ActualEnd    *string `json:"actual_end,omitempty"`
	PlanDocURL   string  `json:"plan_doc_url,omitempty"`
	PlanApproved bool    `json:"plan_approved"`

	Status       model.PlacementStatus `json:"status"`
	CancelReason string                `json:"cancel_reason,omitempty"`
	Remarks      string                `json:"remarks,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

func NewPlacementResponse(p *model.PlacementModel) PlacementResponse {
	resp := PlacementResponse{
		PlacementID:  p.PlacementID.String(),
		StudentID:    p.PlacementStudentID.String(),
		CompanyID:    p.PlacementCompanyID.String(),
		StartDate:    p.PlacementStartDate.Format("2006-01-02"),
		EstEndDate:   p.PlacementEstEndDate.Format("2006-01-02"),
		PlanDocURL:   p.PlacementPlanDocURL,
		PlanApproved: p.PlacementPlanApproved,
		Status:       p.PlacementStatus,
		CancelReason: p.PlacementCancelReason,
		Remarks:      p.PlacementRemarks,
		CreatedAt:    p.CreatedAt,
	}
	if p.PlacementVacancyID != nil {
		s := p.PlacementVacancyID.String()
		resp.VacancyID = &s
	}
	if p.PlacementTutorID != nil {
		s := p.PlacementTutorID.String()
		resp.TutorID = &s
	}
	if p.PlacementAdvisorID != nil {
		s := p.PlacementAdvisorID.String()
		resp.AdvisorID = &s
	}
	if p.PlacementActualEnd != nil {
		s := p.PlacementActualEnd.Format("2006-01-02")
		resp.ActualEnd = &s
	}
	return resp
}
