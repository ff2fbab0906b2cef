package model

import (
	"time"

	"github.com/google/uuid"
)

type CompanyStatus string

const (
	CompanyPending  CompanyStatus = "pending"
	CompanyApproved CompanyStatus = "approved"
	CompanyRejected CompanyStatus = "rejected"
	CompanyInactive CompanyStatus = "inactive"
)

// CompanyModel — empresa formadora que ofrece cupos de práctica.
type CompanyModel struct {
	CompanyID      uuid.UUID     `json:"company_id" gorm:"column:company_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyName    string        `json:"company_name" gorm:"column:company_name;size:300;not null"`
	CompanyTaxID   string        `json:"company_tax_id" gorm:"column:company_tax_id;size:20;uniqueIndex;not null"` // NIT
	CompanyAddress string        `json:"company_address" gorm:"column:company_address;size:300"`
	CompanyPhone   string        `json:"company_phone" gorm:"column:company_phone;size:20"`
	CompanyEmail   string        `json:"company_email" gorm:"column:company_email;size:120"`
	CompanyCity    string        `json:"company_city" gorm:"column:company_city;size:100"`

	// Representante legal
	CompanyRepName  string `json:"company_rep_name" gorm:"column:company_rep_name;size:200"`
	CompanyRepTitle string `json:"company_rep_title" gorm:"column:company_rep_title;size:100"`
	CompanyRepEmail string `json:"company_rep_email" gorm:"column:company_rep_email;size:120"`
	CompanyRepPhone string `json:"company_rep_phone" gorm:"column:company_rep_phone;size:20"`

	// Documentos de registro (referencias opacas al document store)
	CompanyChamberDocURL string `json:"company_chamber_doc_url,omitempty" gorm:"column:company_chamber_doc_url"`
	CompanyTaxDocURL     string `json:"company_tax_doc_url,omitempty" gorm:"column:company_tax_doc_url"`

	CompanyStatus       CompanyStatus `json:"company_status" gorm:"column:company_status;size:20;not null;default:pending"`
	CompanyApprovedByID *uuid.UUID    `json:"company_approved_by_id,omitempty" gorm:"column:company_approved_by_id;type:uuid"`
	CompanyApprovedAt   *time.Time    `json:"company_approved_at,omitempty" gorm:"column:company_approved_at"`
	CompanyRemarks      string        `json:"company_remarks,omitempty" gorm:"column:company_remarks"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (CompanyModel) TableName() string {
	return "companies"
}
