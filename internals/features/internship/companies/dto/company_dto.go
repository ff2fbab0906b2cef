package dto

import (
	"time"

	"practicas_backend/internals/features/internship/companies/model"
)

type RegisterCompanyRequest struct {
	CompanyName    string `json:"company_name" validate:"required,max=300"`
	CompanyTaxID   string `json:"company_tax_id" validate:"required,max=20"`
	CompanyAddress string `json:"company_address" validate:"max=300"`
	CompanyPhone   string `json:"company_phone" validate:"max=20"`
	CompanyEmail   string `json:"company_email" validate:"required,email"`
	CompanyCity    string `json:"company_city" validate:"max=100"`

	CompanyRepName  string `json:"company_rep_name" validate:"required,max=200"`
	CompanyRepTitle string `json:"company_rep_title" validate:"max=100"`
	CompanyRepEmail string `json:"company_rep_email" validate:"omitempty,email"`
	CompanyRepPhone string `json:"company_rep_phone" validate:"max=20"`
}

func (r *RegisterCompanyRequest) ToModel() *model.CompanyModel {
	return &model.CompanyModel{
		CompanyName:     r.CompanyName,
		CompanyTaxID:    r.CompanyTaxID,
		CompanyAddress:  r.CompanyAddress,
		CompanyPhone:    r.CompanyPhone,
		CompanyEmail:    r.CompanyEmail,
		CompanyCity:     r.CompanyCity,
		CompanyRepName:  r.CompanyRepName,
		CompanyRepTitle: r.CompanyRepTitle,
		CompanyRepEmail: r.CompanyRepEmail,
		CompanyRepPhone: r.CompanyRepPhone,
		CompanyStatus:   model.CompanyPending,
	}
}

type ReviewCompanyRequest struct {
	Remarks string `json:"remarks" validate:"max=2000"`
}

type CompanyResponse struct {
	CompanyID     string              `json:"company_id"`
	CompanyName   string              `json:"company_name"`
	CompanyTaxID  string              `json:"company_tax_id"`
	CompanyCity   string              `json:"company_city"`
	CompanyStatus model.CompanyStatus `json:"company_status"`
	CreatedAt     time.Time           `json:"created_at"`
}

func NewCompanyResponse(m *model.CompanyModel) CompanyResponse {
	return CompanyResponse{
		CompanyID:     m.CompanyID.String(),
		CompanyName:   m.CompanyName,
		CompanyTaxID:  m.CompanyTaxID,
		CompanyCity:   m.CompanyCity,
		CompanyStatus: m.CompanyStatus,
		CreatedAt:     m.CreatedAt,
	}
}
