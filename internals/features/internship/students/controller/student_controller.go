package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "practicas_backend/internals/helpers"
	"practicas_backend/internals/helpers/docstore"

	d "practicas_backend/internals/features/internship/students/dto"
	m "practicas_backend/internals/features/internship/students/model"
	"practicas_backend/internals/features/internship/students/service"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

// Create — registro de estudiante (coordinación). El estado inicial sale de
// la tabla de semestres mínimos por programa.
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un estudiante con ese código o usuario")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Estudiante registrado", d.NewStudentResponse(student))
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.StudentModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if program := strings.TrimSpace(c.Query("program")); program != "" {
		q = q.Where("student_program ILIKE ?", "%"+program+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los estudiantes")
	}

	var students []m.StudentModel
	if err := q.Order("student_name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los estudiantes")
	}

	out := make([]d.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, d.NewStudentResponse(&students[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var student m.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.NewStudentResponse(&student))
}

// GetMe — perfil del estudiante autenticado.
func (ctl *StudentController) GetMe(c *fiber.Ctx) error {
	studentID, err := helper.GetEntityIDFromToken(c)
	if err != nil {
		return err
	}
	var student m.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.NewStudentResponse(&student))
}

// UpdateTerm — cambia el semestre y recomputa elegibilidad. placed/completed
// nunca se degradan por recomputación.
func (ctl *StudentController) UpdateTerm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student m.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	newStatus := service.RecomputeStatus(student.StudentStatus, student.StudentProgram, req.Term)
	if err := ctl.DB.WithContext(c.UserContext()).Model(&student).Updates(map[string]interface{}{
		"student_term":   req.Term,
		"student_status": newStatus,
		"updated_at":     time.Now(),
	}).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	student.StudentTerm = req.Term
	student.StudentStatus = newStatus
	return helper.JsonUpdated(c, "Semestre actualizado", d.NewStudentResponse(&student))
}

// UploadPhoto — normaliza a webp y sube al document store.
func (ctl *StudentController) UploadPhoto(c *fiber.Ctx) error {
	studentID, err := helper.GetEntityIDFromToken(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Adjunta el campo photo")
	}

	data, err := helper.NormalizeProfilePhoto(fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	url, err := docstore.UploadBytes(docstore.KindPhoto, fmt.Sprintf("student-%s.webp", studentID), data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.StudentModel{}).
		Where("student_id = ?", studentID).
		Updates(map[string]interface{}{"student_photo_url": url, "updated_at": time.Now()}).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Foto actualizada", fiber.Map{"photo_url": url})
}

// UploadCV — hoja de vida en PDF.
func (ctl *StudentController) UploadCV(c *fiber.Ctx) error {
	studentID, err := helper.GetEntityIDFromToken(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("cv")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Adjunta el campo cv")
	}

	url, err := docstore.UploadFile(docstore.KindCV, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.StudentModel{}).
		Where("student_id = ?", studentID).
		Updates(map[string]interface{}{"student_cv_url": url, "updated_at": time.Now()}).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Hoja de vida actualizada", fiber.Map{"cv_url": url})
}
