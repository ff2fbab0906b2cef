package dto

import (
	"github.com/google/uuid"

	"practicas_backend/internals/features/internship/students/model"
	"practicas_backend/internals/features/internship/students/service"
)

type CreateStudentRequest struct {
	UserID  string   `json:"user_id" validate:"required,uuid4"`
	Code    string   `json:"code" validate:"required,max=20"`
	Name    string   `json:"name" validate:"required,max=200"`
	Email   string   `json:"email" validate:"required,email"`
	Phone   string   `json:"phone" validate:"max=20"`
	Program string   `json:"program" validate:"required,max=200"`
	Term    int      `json:"term" validate:"required,min=1,max=12"`
	GPA     *float64 `json:"gpa" validate:"omitempty,min=0,max=5"`
}

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	userID, _ := uuid.Parse(r.UserID)
	status := model.StudentIneligible
	if service.IsEligible(r.Program, r.Term) {
		status = model.StudentEligible
	}
	return &model.StudentModel{
		StudentUserID:  userID,
		StudentCode:    r.Code,
		StudentName:    r.Name,
		StudentEmail:   r.Email,
		StudentPhone:   r.Phone,
		StudentProgram: r.Program,
		StudentTerm:    r.Term,
		StudentGPA:     r.GPA,
		StudentStatus:  status,
	}
}

type UpdateTermRequest struct {
	Term int `json:"term" validate:"required,min=1,max=12"`
}

type StudentResponse struct {
	StudentID   string              `json:"student_id"`
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	Program     string              `json:"program"`
	Term        int                 `json:"term"`
	MinimumTerm int                 `json:"minimum_term"`
	Status      model.StudentStatus `json:"status"`
	PhotoURL    string              `json:"photo_url,omitempty"`
	CVURL       string              `json:"cv_url,omitempty"`
	GPA         *float64            `json:"gpa,omitempty"`
}

func NewStudentResponse(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:   m.StudentID.String(),
		Code:        m.StudentCode,
		Name:        m.StudentName,
		Program:     m.StudentProgram,
		Term:        m.StudentTerm,
		MinimumTerm: service.MinimumTerm(m.StudentProgram),
		Status:      m.StudentStatus,
		PhotoURL:    m.StudentPhotoURL,
		CVURL:       m.StudentCVURL,
		GPA:         m.StudentGPA,
	}
}
