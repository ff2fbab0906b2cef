package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "practicas_backend/internals/helpers"
	"practicas_backend/internals/helpers/docstore"

	d "practicas_backend/internals/features/internship/defenses/dto"
	m "practicas_backend/internals/features/internship/defenses/model"
	"practicas_backend/internals/features/internship/defenses/service"
	placementModel "practicas_backend/internals/features/internship/placements/model"
	notify "practicas_backend/internals/features/notifications/service"
)

type DefenseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDefenseController(db *gorm.DB, v *validator.Validate) *DefenseController {
	return &DefenseController{DB: db, Validate: v}
}

// Schedule agenda la sustentación. 0..1 por práctica: el índice único sobre
// placement_id resuelve la carrera entre dos schedule concurrentes.
func (ctl *DefenseController) Schedule(c *fiber.Ctx) error {
	var req d.ScheduleDefenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	jury1, _ := uuid.Parse(req.Jury1ID)
	jury2, _ := uuid.Parse(req.Jury2ID)
	if err := service.ValidateSchedule(time.Now(), req.ScheduledAt, jury1, jury2); err != nil {
		switch {
		case errors.Is(err, service.ErrPastDate):
			return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "PAST_DATE",
				"La sustentación debe agendarse a futuro")
		case errors.Is(err, service.ErrDuplicateJury):
			return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "DUPLICATE_JURY",
				"Los dos jurados deben ser personas distintas")
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	placementID, _ := uuid.Parse(req.PlacementID)
	var p placementModel.PlacementModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&p, "placement_id = ?", placementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if p.PlacementStatus != placementModel.PlacementActive {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "PLACEMENT_NOT_FINISHABLE",
			"Solo prácticas activas pueden agendar sustentación")
	}

	registeredBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	df := m.DefenseModel{
		DefensePlacementID:  placementID,
		DefenseScheduledAt:  req.ScheduledAt,
		DefenseVenue:        req.Venue,
		DefenseJury1ID:      jury1,
		DefenseJury2ID:      jury2,
		DefenseStatus:       m.DefenseScheduled,
		DefenseRegisteredBy: registeredBy,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&df).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, "PLACEMENT_NOT_FINISHABLE",
				"La práctica ya tiene una sustentación registrada")
		}
		return helper.WritePGError(c, err)
	}

	notify.Emit(ctl.DB, notify.EventDefenseScheduled, map[string]interface{}{
		"defense_id":   df.DefenseID.String(),
		"placement_id": placementID.String(),
		"scheduled_at": req.ScheduledAt,
	})
	return helper.JsonCreated(c, "Sustentación agendada", d.NewDefenseResponse(&df))
}

// Approve — scheduled → approved con la nota del jurado.
func (ctl *DefenseController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.ApproveDefenseRequest
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

	var df m.DefenseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&df, "defense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sustentación no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if df.DefenseStatus != m.DefenseScheduled {
		return helper.JsonError(c, fiber.StatusConflict, "Solo sustentaciones agendadas pueden aprobarse")
	}

	now := time.Now()
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.DefenseModel{}).
		Where("defense_id = ?", df.DefenseID).
		Updates(map[string]interface{}{
			"defense_status":  m.DefenseApproved,
			"defense_grade":   req.Grade,
			"defense_remarks": req.Remarks,
			"updated_at":      now,
		}).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	notify.Emit(ctl.DB, notify.EventDefenseApproved, map[string]interface{}{
		"defense_id":   df.DefenseID.String(),
		"placement_id": df.DefensePlacementID.String(),
		"grade":        req.Grade,
	})

	df.DefenseStatus = m.DefenseApproved
	df.DefenseGrade = &req.Grade
	df.DefenseRemarks = req.Remarks
	return helper.JsonUpdated(c, "Sustentación aprobada", d.NewDefenseResponse(&df))
}

// Cancel — scheduled → cancelled, terminal. La fila persiste con el motivo
// en las observaciones; la práctica no puede reagendar mientras exista.
func (ctl *DefenseController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.CancelDefenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var df m.DefenseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&df, "defense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sustentación no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if err := df.Cancel(req.Reason); err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.DefenseModel{}).
		Where("defense_id = ?", df.DefenseID).
		Updates(map[string]interface{}{
			"defense_status":  df.DefenseStatus,
			"defense_remarks": df.DefenseRemarks,
			"updated_at":      time.Now(),
		}).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	notify.Emit(ctl.DB, notify.EventDefenseCancelled, map[string]interface{}{
		"defense_id":   df.DefenseID.String(),
		"placement_id": df.DefensePlacementID.String(),
		"reason":       req.Reason,
	})
	return helper.JsonUpdated(c, "Sustentación cancelada", d.NewDefenseResponse(&df))
}

// Delete — elimina la sustentación para permitir reagendar. Operación
// distinta de la cancelación: solo aplica mientras sigue agendada.
func (ctl *DefenseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("defense_id = ? AND defense_status = ?", id, m.DefenseScheduled).
		Delete(&m.DefenseModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Solo sustentaciones agendadas pueden eliminarse")
	}
	return helper.JsonDeleted(c, "Sustentación eliminada", fiber.Map{"defense_id": id})
}

// UploadMinutes — acta de sustentación (PDF).
func (ctl *DefenseController) UploadMinutes(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var df m.DefenseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&df, "defense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sustentación no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	fh, err := c.FormFile("minutes")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Adjunta el campo minutes")
	}

	url, err := docstore.UploadFile(docstore.KindMinutes, fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.DefenseModel{}).
		Where("defense_id = ?", df.DefenseID).
		Updates(map[string]interface{}{"defense_minutes_url": url, "updated_at": time.Now()}).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Acta cargada", fiber.Map{"minutes_url": url})
}

func (ctl *DefenseController) GetByPlacement(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "placementId inválido")
	}

	var df m.DefenseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&df, "defense_placement_id = ?", placementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "La práctica no tiene sustentación")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.NewDefenseResponse(&df))
}
