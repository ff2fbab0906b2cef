package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "practicas_backend/internals/helpers"

	d "practicas_backend/internals/features/internship/advisors/dto"
	m "practicas_backend/internals/features/internship/advisors/model"
	placementModel "practicas_backend/internals/features/internship/placements/model"
)

type TutorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTutorController(db *gorm.DB, v *validator.Validate) *TutorController {
	return &TutorController{DB: db, Validate: v}
}

func (ctl *TutorController) Create(c *fiber.Ctx) error {
	var req d.CreateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tutor := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(tutor).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Tutor registrado", d.NewTutorResponse(tutor))
}

// ListByCompany — tutores de una empresa.
func (ctl *TutorController) ListByCompany(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "companyId inválido")
	}

	var tutors []m.CompanyTutorModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("tutor_company_id = ?", companyID).
		Order("tutor_name ASC").
		Find(&tutors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los tutores")
	}

	out := make([]d.TutorResponse, 0, len(tutors))
	for i := range tutors {
		out = append(out, d.NewTutorResponse(&tutors[i]))
	}
	return helper.JsonOK(c, "", out)
}

// Deactivate — bloqueada mientras el tutor tenga prácticas activas.
func (ctl *TutorController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var activeCount int64
	if err := ctl.DB.WithContext(c.UserContext()).Model(&placementModel.PlacementModel{}).
		Where("placement_tutor_id = ? AND placement_status = ?", id, placementModel.PlacementActive).
		Count(&activeCount).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if activeCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "El tutor tiene prácticas activas asignadas")
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&m.CompanyTutorModel{}).
		Where("tutor_id = ? AND tutor_is_active = true", id).
		Updates(map[string]interface{}{"tutor_is_active": false, "updated_at": time.Now()})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tutor no encontrado o ya inactivo")
	}
	return helper.JsonUpdated(c, "Tutor desactivado", fiber.Map{"tutor_id": id})
}
