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

	d "practicas_backend/internals/features/internship/followups/dto"
	m "practicas_backend/internals/features/internship/followups/model"
	placementModel "practicas_backend/internals/features/internship/placements/model"
	notify "practicas_backend/internals/features/notifications/service"
)

type FollowUpController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFollowUpController(db *gorm.DB, v *validator.Validate) *FollowUpController {
	return &FollowUpController{DB: db, Validate: v}
}

// ownedActivePlacement verifica que la práctica exista, esté activa y
// pertenezca al estudiante autenticado.
func (ctl *FollowUpController) ownedActivePlacement(c *fiber.Ctx, placementID uuid.UUID) (*placementModel.PlacementModel, error) {
	studentID, err := helper.GetEntityIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var p placementModel.PlacementModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&p, "placement_id = ?", placementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		}
		return nil, helper.WritePGError(c, err)
	}
	if p.PlacementStudentID != studentID {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "La práctica no pertenece al estudiante")
	}
	if p.PlacementStatus != placementModel.PlacementActive {
		return nil, helper.JsonError(c, fiber.StatusConflict, "Solo prácticas activas aceptan seguimientos")
	}
	return &p, nil
}

// Create — nuevo seguimiento semanal. Una fila por (práctica, semana).
func (ctl *FollowUpController) Create(c *fiber.Ctx) error {
	var req d.CreateFollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	placementID, _ := uuid.Parse(req.PlacementID)
	if _, err := ctl.ownedActivePlacement(c, placementID); err != nil {
		return err
	}

	f := m.WeeklyFollowUpModel{
		FollowUpPlacementID:  placementID,
		FollowUpWeekNumber:   req.WeekNumber,
		FollowUpWeekStart:    req.WeekStart,
		FollowUpWeekEnd:      req.WeekEnd,
		FollowUpActivities:   req.Activities,
		FollowUpAchievements: req.Achievements,
		FollowUpDifficulties: req.Difficulties,
		FollowUpStatus:       m.FollowUpPending,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&f).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, "DUPLICATE_WEEK",
				fmt.Sprintf("Ya existe un seguimiento para la semana %d", req.WeekNumber))
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Seguimiento registrado", d.NewFollowUpResponse(&f))
}

// Update — reglas de edición: pending se edita libre; rejected vuelve a
// pending (limpiando la revisión del asesor); approved solo si es la semana
// más reciente de la práctica. El resto es inmutable.
func (ctl *FollowUpController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateFollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var f m.WeeklyFollowUpModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&f, "followup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Seguimiento no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	if _, err := ctl.ownedActivePlacement(c, f.FollowUpPlacementID); err != nil {
		return err
	}

	editable := false
	resetReview := false
	switch f.FollowUpStatus {
	case m.FollowUpPending:
		editable = true
	case m.FollowUpRejected:
		editable = true
		resetReview = true
	case m.FollowUpApproved:
		// ventana de corrección: solo la semana más reciente
		var maxWeek int
		row := ctl.DB.WithContext(c.UserContext()).Model(&m.WeeklyFollowUpModel{}).
			Where("followup_placement_id = ?", f.FollowUpPlacementID).
			Select("COALESCE(MAX(followup_week_number), 0)").
			Row()
		if err := row.Scan(&maxWeek); err != nil {
			return helper.WritePGError(c, err)
		}
		if f.FollowUpWeekNumber == maxWeek {
			editable = true
			resetReview = true
		}
	}
	if !editable {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "IMMUTABLE_FOLLOWUP",
			"El seguimiento ya fue revisado y no admite cambios")
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if strings.TrimSpace(req.Activities) != "" {
		updates["followup_activities"] = req.Activities
	}
	if req.Achievements != "" {
		updates["followup_achievements"] = req.Achievements
	}
	if req.Difficulties != "" {
		updates["followup_difficulties"] = req.Difficulties
	}
	if resetReview {
		updates["followup_status"] = m.FollowUpPending
		updates["followup_grade"] = nil
		updates["followup_advisor_remarks"] = ""
		updates["followup_reviewed_at"] = nil
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.WeeklyFollowUpModel{}).
		Where("followup_id = ?", f.FollowUpID).
		Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).First(&f, "followup_id = ?", f.FollowUpID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Seguimiento actualizado", d.NewFollowUpResponse(&f))
}

// Grade — la nota determina el estado: >= 3.0 aprueba, < 3.0 rechaza.
func (ctl *FollowUpController) Grade(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.GradeFollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Grade < 0 || req.Grade > 5 {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "INVALID_SCORE",
			"La nota debe estar entre 0.0 y 5.0")
	}

	var f m.WeeklyFollowUpModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&f, "followup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Seguimiento no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	if f.FollowUpStatus == m.FollowUpApproved {
		return helper.JsonError(c, fiber.StatusConflict, "El seguimiento ya fue aprobado")
	}

	advisorID, err := helper.GetEntityIDFromToken(c)
	if err != nil {
		return err
	}
	var p placementModel.PlacementModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&p, "placement_id = ?", f.FollowUpPlacementID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if p.PlacementAdvisorID == nil || *p.PlacementAdvisorID != advisorID {
		return helper.JsonError(c, fiber.StatusForbidden, "El seguimiento no pertenece a una práctica asignada al asesor")
	}

	now := time.Now()
	newStatus := m.StatusForGrade(req.Grade)
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.WeeklyFollowUpModel{}).
		Where("followup_id = ?", f.FollowUpID).
		Updates(map[string]interface{}{
			"followup_status":          newStatus,
			"followup_grade":           req.Grade,
			"followup_advisor_remarks": req.Remarks,
			"followup_reviewed_at":     now,
			"updated_at":               now,
		}).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	notify.Emit(ctl.DB, notify.EventFollowUpGraded, map[string]interface{}{
		"followup_id":  f.FollowUpID.String(),
		"placement_id": f.FollowUpPlacementID.String(),
		"week_number":  f.FollowUpWeekNumber,
		"grade":        req.Grade,
		"status":       string(newStatus),
	})

	f.FollowUpStatus = newStatus
	f.FollowUpGrade = &req.Grade
	f.FollowUpAdvisorRemarks = req.Remarks
	f.FollowUpReviewedAt = &now
	return helper.JsonUpdated(c, "Seguimiento calificado", d.NewFollowUpResponse(&f))
}

// UploadEvidence — evidencia semanal (PDF o imagen).
func (ctl *FollowUpController) UploadEvidence(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var f m.WeeklyFollowUpModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&f, "followup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Seguimiento no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	if _, err := ctl.ownedActivePlacement(c, f.FollowUpPlacementID); err != nil {
		return err
	}
	if f.FollowUpStatus == m.FollowUpApproved {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "IMMUTABLE_FOLLOWUP",
			"El seguimiento ya fue revisado y no admite cambios")
	}

	fh, err := c.FormFile("evidence")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Adjunta el campo evidence")
	}

	url, err := docstore.UploadFile(docstore.KindEvidence, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.WeeklyFollowUpModel{}).
		Where("followup_id = ?", f.FollowUpID).
		Updates(map[string]interface{}{"followup_evidence_url": url, "updated_at": time.Now()}).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Evidencia cargada", fiber.Map{"evidence_url": url})
}

// ListByPlacement — seguimientos de una práctica, ordenados por semana.
func (ctl *FollowUpController) ListByPlacement(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "placementId inválido")
	}

	var followups []m.WeeklyFollowUpModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("followup_placement_id = ?", placementID).
		Order("followup_week_number ASC").
		Find(&followups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los seguimientos")
	}

	out := make([]d.FollowUpResponse, 0, len(followups))
	for i := range followups {
		out = append(out, d.NewFollowUpResponse(&followups[i]))
	}
	return helper.JsonOK(c, "", out)
}
