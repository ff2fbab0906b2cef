package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "practicas_backend/internals/helpers"

	"practicas_backend/internals/constants"
	d "practicas_backend/internals/features/internship/applications/dto"
	m "practicas_backend/internals/features/internship/applications/model"
	placementModel "practicas_backend/internals/features/internship/placements/model"
	studentModel "practicas_backend/internals/features/internship/students/model"
	capacity "practicas_backend/internals/features/internship/vacancies/service"
	vacancyModel "practicas_backend/internals/features/internship/vacancies/model"
	notify "practicas_backend/internals/features/notifications/service"
)

// Máximo de postulaciones activas (submitted/selected) por estudiante.
const MaxActiveApplications = 3

type ApplicationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewApplicationController(db *gorm.DB, v *validator.Validate) *ApplicationController {
	return &ApplicationController{DB: db, Validate: v}
}

/* =========================
   Submit
   ========================= */

// Submit crea la postulación. Validaciones en orden: duplicado, elegibilidad,
// capacidad, tope de activas. El índice único (vacante, estudiante) respalda
// el chequeo de duplicados bajo concurrencia.
func (ctl *ApplicationController) Submit(c *fiber.Ctx) error {
	var req d.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// resolver el estudiante: coordinación lo manda en el body, el estudiante
	// solo puede postularse a sí mismo.
	var studentID uuid.UUID
	initialStatus := m.ApplicationSubmitted
	switch role {
	case constants.RoleStudent:
		studentID, err = helper.GetEntityIDFromToken(c)
		if err != nil {
			return err
		}
	default:
		if strings.TrimSpace(req.StudentID) == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id es requerido")
		}
		studentID, _ = uuid.Parse(req.StudentID)
		// la postulación hecha por coordinación queda directamente seleccionada
		initialStatus = m.ApplicationSelected
	}

	vacancyID, _ := uuid.Parse(req.VacancyID)

	var student studentModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.WritePGError(c, err)
	}

	var vacancy vacancyModel.VacancyModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&vacancy, "vacancy_id = ?", vacancyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vacante no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	// 1) duplicado (pre-chequeo; el índice único decide bajo carrera)
	var dup int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.ApplicationModel{}).
		Where("application_vacancy_id = ? AND application_student_id = ?", vacancyID, studentID).
		Count(&dup).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if dup > 0 {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "DUPLICATE_APPLICATION",
			"El estudiante ya se postuló a esta vacante")
	}

	// 2) elegibilidad: estado del estudiante + semestre mínimo de la vacante
	if student.StudentStatus != studentModel.StudentEligible {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "NOT_ELIGIBLE",
			"El estudiante no está apto para postularse")
	}
	if student.StudentTerm < vacancy.VacancyMinTerm {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "NOT_ELIGIBLE",
			"El estudiante no cumple el semestre mínimo de la vacante")
	}

	// 3) capacidad: la vacante debe estar disponible
	if vacancy.VacancyStatus != vacancyModel.VacancyAvailable {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "NO_CAPACITY",
			"La vacante no está disponible")
	}

	// 4) tope de postulaciones activas
	var active int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.ApplicationModel{}).
		Where("application_student_id = ?", studentID).
		Where("application_status IN ?", []m.ApplicationStatus{m.ApplicationSubmitted, m.ApplicationSelected}).
		Count(&active).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if active >= MaxActiveApplications {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "TOO_MANY_ACTIVE_APPLICATIONS",
			"El estudiante ya tiene 3 postulaciones activas")
	}

	app := m.ApplicationModel{
		ApplicationVacancyID:   vacancyID,
		ApplicationStudentID:   studentID,
		ApplicationSubmittedBy: actorID,
		ApplicationStatus:      initialStatus,
		ApplicationRemarks:     req.Remarks,
	}
	if initialStatus == m.ApplicationSelected {
		now := time.Now()
		app.ApplicationRespondedAt = &now
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&app).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, "DUPLICATE_APPLICATION",
				"El estudiante ya se postuló a esta vacante")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Postulación creada", d.NewApplicationResponse(&app))
}

/* =========================
   Select
   ========================= */

// Select — submitted → selected, sin efectos colaterales.
func (ctl *ApplicationController) Select(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	now := time.Now()
	res := ctl.DB.WithContext(c.UserContext()).Model(&m.ApplicationModel{}).
		Where("application_id = ? AND application_status = ?", id, m.ApplicationSubmitted).
		Updates(map[string]interface{}{
			"application_status":       m.ApplicationSelected,
			"application_responded_at": now,
			"updated_at":               now,
		})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Solo postulaciones en estado postulado pueden seleccionarse")
	}

	var app m.ApplicationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&app, "application_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Postulación seleccionada", d.NewApplicationResponse(&app))
}

/* =========================
   Link (transacción de vinculación)
   ========================= */

// Link — selected → linked. Una sola transacción: lock de la postulación,
// reserva del cupo, creación de la práctica y estudiante → placed. Todo o
// nada: CapacityExceeded deja la postulación en selected sin mutar nada.
func (ctl *ApplicationController) Link(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.LinkApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	coordinatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tx := ctl.DB.WithContext(c.UserContext()).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo abrir la transacción")
	}

	// 1) postulación (FOR UPDATE)
	var app m.ApplicationModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", id).
		First(&app).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Postulación no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if app.ApplicationStatus != m.ApplicationSelected {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusConflict, "Solo postulaciones seleccionadas pueden vincularse")
	}

	// 2) reservar cupo (lock + check + increment como unidad)
	vacancy, err := capacity.Reserve(tx, app.ApplicationVacancyID)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, capacity.ErrCapacityExceeded) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, "CAPACITY_EXCEEDED",
				"La vacante se quedó sin cupos; la postulación sigue seleccionada")
		}
		return helper.WritePGError(c, err)
	}

	// 3) crear la práctica
	var tutorID, advisorID *uuid.UUID
	if strings.TrimSpace(req.TutorID) != "" {
		tid, _ := uuid.Parse(req.TutorID)
		tutorID = &tid
	}
	if strings.TrimSpace(req.AdvisorID) != "" {
		aid, _ := uuid.Parse(req.AdvisorID)
		advisorID = &aid
	}

	vacancyID := app.ApplicationVacancyID
	placement := placementModel.PlacementModel{
		PlacementStudentID:  app.ApplicationStudentID,
		PlacementCompanyID:  vacancy.VacancyCompanyID,
		PlacementVacancyID:  &vacancyID,
		PlacementTutorID:    tutorID,
		PlacementAdvisorID:  advisorID,
		PlacementAssignedBy: coordinatorID,
		PlacementStartDate:  req.StartDate,
		PlacementEstEndDate: req.EstEndDate,
		PlacementStatus:     placementModel.PlacementActive,
	}
	if err := tx.Create(&placement).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	// 4) postulación → linked
	now := time.Now()
	if err := tx.Model(&m.ApplicationModel{}).
		Where("application_id = ?", app.ApplicationID).
		Updates(map[string]interface{}{
			"application_status":       m.ApplicationLinked,
			"application_responded_at": now,
			"updated_at":               now,
		}).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	// 5) estudiante → placed
	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", app.ApplicationStudentID).
		Updates(map[string]interface{}{
			"student_status": studentModel.StudentPlaced,
			"updated_at":     now,
		}).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	if err := tx.Commit().Error; err != nil {
		return helper.WritePGError(c, err)
	}

	notify.Emit(ctl.DB, notify.EventApplicationLinked, map[string]interface{}{
		"application_id": app.ApplicationID.String(),
		"placement_id":   placement.PlacementID.String(),
		"student_id":     app.ApplicationStudentID.String(),
		"vacancy_id":     vacancyID.String(),
	})

	app.ApplicationStatus = m.ApplicationLinked
	return helper.JsonUpdated(c, "Postulación vinculada; práctica creada", fiber.Map{
		"application": d.NewApplicationResponse(&app),
		"placement":   placement,
	})
}

/* =========================
   Reject
   ========================= */

// Reject — submitted|selected → rejected. El estudiante vuelve a eligible,
// salvo que esté placed por otra práctica activa (regla asimétrica: nunca se
// degrada a ineligible por un rechazo).
func (ctl *ApplicationController) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.RejectApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El rechazo requiere un motivo")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo abrir la transacción")
	}

	var app m.ApplicationModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", id).
		First(&app).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Postulación no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if app.IsTerminal() {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusConflict, "La postulación ya está en estado terminal")
	}

	now := time.Now()
	if err := tx.Model(&m.ApplicationModel{}).
		Where("application_id = ?", app.ApplicationID).
		Updates(map[string]interface{}{
			"application_status":       m.ApplicationRejected,
			"application_remarks":      req.Reason,
			"application_responded_at": now,
			"updated_at":               now,
		}).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	// una postulación nunca vinculada no toca contadores de la vacante;
	// solo se revierte la elegibilidad si el estudiante no está en práctica
	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_id = ? AND student_status <> ?", app.ApplicationStudentID, studentModel.StudentPlaced).
		Where("student_status <> ?", studentModel.StudentCompleted).
		Update("student_status", studentModel.StudentEligible).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	if err := tx.Commit().Error; err != nil {
		return helper.WritePGError(c, err)
	}

	notify.Emit(ctl.DB, notify.EventApplicationRejected, map[string]interface{}{
		"application_id": app.ApplicationID.String(),
		"student_id":     app.ApplicationStudentID.String(),
		"reason":         req.Reason,
	})

	app.ApplicationStatus = m.ApplicationRejected
	app.ApplicationRemarks = req.Reason
	return helper.JsonUpdated(c, "Postulación rechazada", d.NewApplicationResponse(&app))
}

/* =========================
   Lecturas
   ========================= */

func (ctl *ApplicationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.ApplicationModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("application_status = ?", status)
	}
	if vacancyID := strings.TrimSpace(c.Query("vacancy_id")); vacancyID != "" {
		q = q.Where("application_vacancy_id = ?", vacancyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las postulaciones")
	}

	var apps []m.ApplicationModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las postulaciones")
	}

	out := make([]d.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, d.NewApplicationResponse(&apps[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ListMine — postulaciones del estudiante autenticado.
func (ctl *ApplicationController) ListMine(c *fiber.Ctx) error {
	studentID, err := helper.GetEntityIDFromToken(c)
	if err != nil {
		return err
	}

	var apps []m.ApplicationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("application_student_id = ?", studentID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las postulaciones")
	}

	out := make([]d.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, d.NewApplicationResponse(&apps[i]))
	}
	return helper.JsonOK(c, "", out)
}
