package dto

import (
	"time"

	"practicas_backend/internals/features/internship/applications/model"
)

type SubmitApplicationRequest struct {
	VacancyID string `json:"vacancy_id" validate:"required,uuid4"`
	StudentID string `json:"student_id" validate:"omitempty,uuid4"` // coordinación postula a nombre del estudiante
	Remarks   string `json:"remarks" validate:"max=2000"`
}

type RejectApplicationRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=2000"`
}

// LinkApplicationRequest — datos de la práctica creada al vincular.
type LinkApplicationRequest struct {
	StartDate  time.Time `json:"start_date" validate:"required"`
	EstEndDate time.Time `json:"est_end_date" validate:"required,gtfield=StartDate"`
	TutorID    string    `json:"tutor_id" validate:"omitempty,uuid4"`
	AdvisorID  string    `json:"advisor_id" validate:"omitempty,uuid4"`
}

type ApplicationResponse struct {
	ApplicationID string                  `json:"application_id"`
	VacancyID     string                  `json:"vacancy_id"`
	StudentID     string                  `json:"student_id"`
	Status        model.ApplicationStatus `json:"status"`
	Remarks       string                  `json:"remarks,omitempty"`
	RespondedAt   *time.Time              `json:"responded_at,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

func NewApplicationResponse(a *model.ApplicationModel) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID: a.ApplicationID.String(),
		VacancyID:     a.ApplicationVacancyID.String(),
		StudentID:     a.ApplicationStudentID.String(),
		Status:        a.ApplicationStatus,
		Remarks:       a.ApplicationRemarks,
		RespondedAt:   a.ApplicationRespondedAt,
		CreatedAt:     a.CreatedAt,
	}
}
