package dto

import (
	"time"

	"github.com/google/uuid"

	"practicas_backend/internals/features/internship/advisors/model"
)

type CreateAdvisorRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	Name      string `json:"name" validate:"required,min=3,max=200"`
	IDNumber  string `json:"id_number" validate:"omitempty,max=20"`
	Email     string `json:"email" validate:"required,email,max=120"`
	Phone     string `json:"phone" validate:"max=20"`
	Specialty string `json:"specialty" validate:"max=200"`
}

func (r *CreateAdvisorRequest) ToModel() *model.AdvisorModel {
	userID, _ := uuid.Parse(r.UserID)
	return &model.AdvisorModel{
		AdvisorUserID:    userID,
		AdvisorName:      r.Name,
		AdvisorIDNumber:  r.IDNumber,
		AdvisorEmail:     r.Email,
		AdvisorPhone:     r.Phone,
		AdvisorSpecialty: r.Specialty,
		AdvisorIsActive:  true,
	}
}

type CreateTutorRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid4"`
	Name      string `json:"name" validate:"required,min=3,max=200"`
	Title     string `json:"title" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=120"`
	Phone     string `json:"phone" validate:"max=20"`
}

func (r *CreateTutorRequest) ToModel() *model.CompanyTutorModel {
	companyID, _ := uuid.Parse(r.CompanyID)
	return &model.CompanyTutorModel{
		TutorCompanyID: companyID,
		TutorName:      r.Name,
		TutorTitle:     r.Title,
		TutorEmail:     r.Email,
		TutorPhone:     r.Phone,
		TutorIsActive:  true,
	}
}

type AdvisorResponse struct {
	AdvisorID string    `json:"advisor_id"`
	Name      string    `json:"name"`
	IDNumber  string    `json:"id_number,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Specialty string    `json:"specialty,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAdvisorResponse(a *model.AdvisorModel) AdvisorResponse {
	return AdvisorResponse{
		AdvisorID: a.AdvisorID.String(),
		Name:      a.AdvisorName,
		IDNumber:  a.AdvisorIDNumber,
		Email:     a.AdvisorEmail,
		Phone:     a.AdvisorPhone,
		Specialty: a.AdvisorSpecialty,
		PhotoURL:  a.AdvisorPhotoURL,
		IsActive:  a.AdvisorIsActive,
		CreatedAt: a.CreatedAt,
	}
}

type TutorResponse struct {
	TutorID   string    `json:"tutor_id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Title     string    `json:"title,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTutorResponse(t *model.CompanyTutorModel) TutorResponse {
	return TutorResponse{
		TutorID:   t.TutorID.String(),
		CompanyID: t.TutorCompanyID.String(),
		Name:      t.TutorName,
		Title:     t.TutorTitle,
		Email:     t.TutorEmail,
		Phone:     t.TutorPhone,
		IsActive:  t.TutorIsActive,
		CreatedAt: t.CreatedAt,
	}
}
