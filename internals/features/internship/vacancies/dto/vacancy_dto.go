package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"practicas_backend/internals/features/internship/vacancies/model"
)

type CreateVacancyRequest struct {
	CompanyID      string   `json:"company_id" validate:"required,uuid4"`
	Title          string   `json:"title" validate:"required,max=300"`
	Area           string   `json:"area" validate:"max=200"`
	Description    string   `json:"description" validate:"required"`
	TotalSlots     int      `json:"total_slots" validate:"required,min=1"`
	Program        string   `json:"program" validate:"required,max=200"`
	MinTerm        int      `json:"min_term" validate:"required,min=1,max=12"`
	SkillsRequired []string `json:"skills_required" validate:"max=20,dive,max=100"`
	Schedule       string   `json:"schedule" validate:"max=200"`
	DurationMonths int      `json:"duration_months" validate:"min=1,max=12"`
	ClosesAt       *time.Time `json:"closes_at"`
}

func (r *CreateVacancyRequest) ToModel(createdBy uuid.UUID) *model.VacancyModel {
	companyID, _ := uuid.Parse(r.CompanyID)
	duration := r.DurationMonths
	if duration == 0 {
		duration = 6
	}
	now := time.Now()
	return &model.VacancyModel{
		VacancyCompanyID:      companyID,
		VacancyTitle:          r.Title,
		VacancyArea:           r.Area,
		VacancyDescription:    r.Description,
		VacancyTotalSlots:     r.TotalSlots,
		VacancyOccupiedSlots:  0,
		VacancyProgram:        r.Program,
		VacancyMinTerm:        r.MinTerm,
		VacancySkillsRequired: pq.StringArray(r.SkillsRequired),
		VacancySchedule:       r.Schedule,
		VacancyDurationMonths: duration,
		VacancyStatus:         model.VacancyAvailable,
		VacancyCreatedByID:    createdBy,
		VacancyPublishedAt:    &now,
		VacancyClosesAt:       r.ClosesAt,
	}
}

type UpdateVacancyRequest struct {
	Title          *string  `json:"title" validate:"omitempty,max=300"`
	Area           *string  `json:"area" validate:"omitempty,max=200"`
	Description    *string  `json:"description"`
	TotalSlots     *int     `json:"total_slots" validate:"omitempty,min=1"`
	MinTerm        *int     `json:"min_term" validate:"omitempty,min=1,max=12"`
	SkillsRequired []string `json:"skills_required" validate:"omitempty,max=20,dive,max=100"`
	Schedule       *string  `json:"schedule" validate:"omitempty,max=200"`
	ClosesAt       *time.Time `json:"closes_at"`
}

type VacancyResponse struct {
	VacancyID      string              `json:"vacancy_id"`
	CompanyID      string              `json:"company_id"`
	Title          string              `json:"title"`
	Area           string              `json:"area"`
	Program        string              `json:"program"`
	MinTerm        int                 `json:"min_term"`
	TotalSlots     int                 `json:"total_slots"`
	OccupiedSlots  int                 `json:"occupied_slots"`
	AvailableSlots int                 `json:"available_slots"`
	Status         model.VacancyStatus `json:"status"`
	SkillsRequired []string            `json:"skills_required,omitempty"`
	Schedule       string              `json:"schedule,omitempty"`
	DurationMonths int                 `json:"duration_months"`
	ClosesAt       *time.Time          `json:"closes_at,omitempty"`
}

func NewVacancyResponse(v *model.VacancyModel) VacancyResponse {
	return VacancyResponse{
		VacancyID:      v.VacancyID.String(),
		CompanyID:      v.VacancyCompanyID.String(),
		Title:          v.VacancyTitle,
		Area:           v.VacancyArea,
		Program:        v.VacancyProgram,
		MinTerm:        v.VacancyMinTerm,
		TotalSlots:     v.VacancyTotalSlots,
		OccupiedSlots:  v.VacancyOccupiedSlots,
		AvailableSlots: v.AvailableSlots(),
		Status:         v.VacancyStatus,
		SkillsRequired: v.VacancySkillsRequired,
		Schedule:       v.VacancySchedule,
		DurationMonths: v.VacancyDurationMonths,
		ClosesAt:       v.VacancyClosesAt,
	}
}
