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
	"gorm.io/gorm/clause"

	"practicas_backend/internals/constants"
	helper "practicas_backend/internals/helpers"
	"practicas_backend/internals/helpers/docstore"

	d "practicas_backend/internals/features/internship/placements/dto"
	m "practicas_backend/internals/features/internship/placements/model"
	"practicas_backend/internals/features/internship/placements/service"
	studentModel "practicas_backend/internals/features/internship/students/model"
	capacity "practicas_backend/internals/features/internship/vacancies/service"
	notify "practicas_backend/internals/features/notifications/service"
)

type PlacementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPlacementController(db *gorm.DB, v *validator.Validate) *PlacementController {
	return &PlacementController{DB: db, Validate: v}
}

// canView: coordinación ve todo; estudiante y asesor solo lo suyo.
func (ctl *PlacementController) canView(c *fiber.Ctx, p *m.PlacementModel) bool {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return false
	}
	switch role {
	case constants.RoleStudent:
		entityID, err := helper.GetEntityIDFromToken(c)
		return err == nil && entityID == p.PlacementStudentID
	case constants.RoleAdvisor:
		entityID, err := helper.GetEntityIDFromToken(c)
		return err == nil && p.PlacementAdvisorID != nil && entityID == *p.PlacementAdvisorID
	default:
		return true
	}
}

func (ctl *PlacementController) find(c *fiber.Ctx) (*m.PlacementModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var p m.PlacementModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&p, "placement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		}
		return nil, helper.WritePGError(c, err)
	}
	return &p, nil
}

func (ctl *PlacementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.PlacementModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("placement_status = ?", status)
	}
	if companyID := strings.TrimSpace(c.Query("company_id")); companyID != "" {
		q = q.Where("placement_company_id = ?", companyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las prácticas")
	}

	var placements []m.PlacementModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&placements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las prácticas")
	}

	out := make([]d.PlacementResponse, 0, len(placements))
	for i := range placements {
		out = append(out, d.NewPlacementResponse(&placements[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *PlacementController) GetByID(c *fiber.Ctx) error {
	p, err := ctl.find(c)
	if err != nil {
		return err
	}
	if !ctl.canView(c, p) {
		return helper.JsonError(c, fiber.StatusForbidden, "Sin acceso a esta práctica")
	}
	return helper.JsonOK(c, "", d.NewPlacementResponse(p))
}

// ListMine — prácticas del estudiante o asesor autenticado.
func (ctl *PlacementController) ListMine(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	entityID, err := helper.GetEntityIDFromToken(c)
	if err != nil {
		return err
	}

	col := "placement_student_id"
	if role == constants.RoleAdvisor {
		col = "placement_advisor_id"
	}

	var placements []m.PlacementModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where(col+" = ?", entityID).
		Order("created_at DESC").
		Find(&placements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las prácticas")
	}

	out := make([]d.PlacementResponse, 0, len(placements))
	for i := range placements {
		out = append(out, d.NewPlacementResponse(&placements[i]))
	}
	return helper.JsonOK(c, "", out)
}

// UploadPlan — el estudiante sube el plan de trabajo (PDF). Subir una nueva
// versión invalida la aprobación previa.
func (ctl *PlacementController) UploadPlan(c *fiber.Ctx) error {
	p, err := ctl.find(c)
	if err != nil {
		return err
	}
	if !ctl.canView(c, p) {
		return helper.JsonError(c, fiber.StatusForbidden, "Sin acceso a esta práctica")
	}
	if p.PlacementStatus != m.PlacementActive {
		return helper.JsonError(c, fiber.StatusConflict, "Solo prácticas activas aceptan plan de trabajo")
	}

	fh, err := c.FormFile("plan")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Adjunta el campo plan")
	}

	url, err := docstore.UploadFile(docstore.KindPlan, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.PlacementModel{}).
		Where("placement_id = ?", p.PlacementID).
		Updates(map[string]interface{}{
			"placement_plan_doc_url":  url,
			"placement_plan_approved": false,
			"updated_at":              time.Now(),
		}).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Plan de trabajo cargado", fiber.Map{"plan_doc_url": url})
}

// ApprovePlan — idempotente: aprobar un plan ya aprobado responde 200.
func (ctl *PlacementController) ApprovePlan(c *fiber.Ctx) error {
	p, err := ctl.find(c)
	if err != nil {
		return err
	}
	if p.PlacementStatus != m.PlacementActive {
		return helper.JsonError(c, fiber.StatusConflict, "Solo prácticas activas aceptan aprobación de plan")
	}
	if strings.TrimSpace(p.PlacementPlanDocURL) == "" {
		return helper.JsonError(c, fiber.StatusConflict, "La práctica no tiene plan de trabajo cargado")
	}
	if p.PlacementPlanApproved {
		return helper.JsonOK(c, "El plan ya estaba aprobado", d.NewPlacementResponse(p))
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.PlacementModel{}).
		Where("placement_id = ?", p.PlacementID).
		Updates(map[string]interface{}{
			"placement_plan_approved": true,
			"updated_at":              time.Now(),
		}).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	p.PlacementPlanApproved = true
	return helper.JsonUpdated(c, "Plan de trabajo aprobado", d.NewPlacementResponse(p))
}

// ClosureProgress — checklist de cierre en lectura: requisitos cumplidos y
// pendientes. Nunca se cachea.
func (ctl *PlacementController) ClosureProgress(c *fiber.Ctx) error {
	p, err := ctl.find(c)
	if err != nil {
		return err
	}
	if !ctl.canView(c, p) {
		return helper.JsonError(c, fiber.StatusForbidden, "Sin acceso a esta práctica")
	}

	snap, err := service.Snapshot(ctl.DB.WithContext(c.UserContext()), p)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	ok, unmet := service.Evaluate(snap)
	return helper.JsonOK(c, "", fiber.Map{
		"can_finalize": ok,
		"unmet":        unmet,
		"snapshot":     snap,
		"required": fiber.Map{
			"evaluations": service.MinEvaluations,
			"followups":   service.MinFollowUps,
		},
	})
}

// Finalize — active → finalized, solo con el checklist completo. El 409
// enumera TODOS los requisitos incumplidos.
func (ctl *PlacementController) Finalize(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo abrir la transacción")
	}

	var p m.PlacementModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("placement_id = ?", id).
		First(&p).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if p.PlacementStatus != m.PlacementActive {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusConflict, "Solo prácticas activas pueden finalizarse")
	}

	snap, err := service.Snapshot(tx, &p)
	if err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}
	if ok, unmet := service.Evaluate(snap); !ok {
		tx.Rollback()
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":    false,
			"message":    "La práctica no cumple los requisitos de cierre",
			"error_code": "CLOSURE_REQUIREMENTS_NOT_MET",
			"unmet":      unmet,
			"snapshot":   snap,
		})
	}

	now := time.Now()
	if err := tx.Model(&m.PlacementModel{}).
		Where("placement_id = ?", p.PlacementID).
		Updates(map[string]interface{}{
			"placement_status":     m.PlacementFinalized,
			"placement_actual_end": now,
			"updated_at":           now,
		}).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", p.PlacementStudentID).
		Updates(map[string]interface{}{
			"student_status": studentModel.StudentCompleted,
			"updated_at":     now,
		}).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	if err := tx.Commit().Error; err != nil {
		return helper.WritePGError(c, err)
	}

	notify.Emit(ctl.DB, notify.EventPlacementFinalized, map[string]interface{}{
		"placement_id": p.PlacementID.String(),
		"student_id":   p.PlacementStudentID.String(),
	})

	p.PlacementStatus = m.PlacementFinalized
	p.PlacementActualEnd = &now
	return helper.JsonUpdated(c, "Práctica finalizada", d.NewPlacementResponse(&p))
}

// Cancel — active → cancelled. Devuelve el cupo a la vacante (si la práctica
// nació de una) y el estudiante vuelve a eligible, todo en una transacción.
func (ctl *PlacementController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.CancelPlacementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tx := ctl.DB.WithContext(c.UserContext()).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo abrir la transacción")
	}

	var p m.PlacementModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("placement_id = ?", id).
		First(&p).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if p.PlacementStatus != m.PlacementActive {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusConflict, "Solo prácticas activas pueden cancelarse")
	}

	if p.PlacementVacancyID != nil {
		if _, err := capacity.Release(tx, *p.PlacementVacancyID); err != nil {
			tx.Rollback()
			return helper.WritePGError(c, err)
		}
	}

	now := time.Now()
	if err := tx.Model(&m.PlacementModel{}).
		Where("placement_id = ?", p.PlacementID).
		Updates(map[string]interface{}{
			"placement_status":        m.PlacementCancelled,
			"placement_cancel_reason": req.Reason,
			"placement_actual_end":    now,
			"updated_at":              now,
		}).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	// la cancelación nunca deja al estudiante como completed
	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", p.PlacementStudentID).
		Updates(map[string]interface{}{
			"student_status": studentModel.StudentEligible,
			"updated_at":     now,
		}).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}

	if err := tx.Commit().Error; err != nil {
		return helper.WritePGError(c, err)
	}

	notify.Emit(ctl.DB, notify.EventPlacementCancelled, map[string]interface{}{
		"placement_id": p.PlacementID.String(),
		"student_id":   p.PlacementStudentID.String(),
		"reason":       req.Reason,
	})

	p.PlacementStatus = m.PlacementCancelled
	p.PlacementCancelReason = req.Reason
	p.PlacementActualEnd = &now
	return helper.JsonUpdated(c, fmt.Sprintf("Práctica cancelada: %s", req.Reason), d.NewPlacementResponse(&p))
}
