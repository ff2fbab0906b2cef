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

	d "practicas_backend/internals/features/internship/advisors/dto"
	m "practicas_backend/internals/features/internship/advisors/model"
)

type AdvisorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdvisorController(db *gorm.DB, v *validator.Validate) *AdvisorController {
	return &AdvisorController{DB: db, Validate: v}
}

func (ctl *AdvisorController) Create(c *fiber.Ctx) error {
	var req d.CreateAdvisorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	advisor := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(advisor).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un asesor con ese usuario o documento")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Asesor registrado", d.NewAdvisorResponse(advisor))
}

func (ctl *AdvisorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.AdvisorModel{})
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("advisor_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los asesores")
	}

	var advisors []m.AdvisorModel
	if err := q.Order("advisor_name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&advisors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar los asesores")
	}

	out := make([]d.AdvisorResponse, 0, len(advisors))
	for i := range advisors {
		out = append(out, d.NewAdvisorResponse(&advisors[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *AdvisorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}
	var advisor m.AdvisorModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&advisor, "advisor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asesor no encontrado")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.NewAdvisorResponse(&advisor))
}

// UploadPhoto — foto de perfil del asesor autenticado, normalizada a webp.
func (ctl *AdvisorController) UploadPhoto(c *fiber.Ctx) error {
	advisorID, err := helper.GetEntityIDFromToken(c)
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

	url, err := docstore.UploadBytes(docstore.KindPhoto, fmt.Sprintf("advisor-%s.webp", advisorID), data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&m.AdvisorModel{}).
		Where("advisor_id = ?", advisorID).
		Updates(map[string]interface{}{"advisor_photo_url": url, "updated_at": time.Now()}).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Foto actualizada", fiber.Map{"photo_url": url})
}

// Deactivate — baja lógica del asesor.
func (ctl *AdvisorController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&m.AdvisorModel{}).
		Where("advisor_id = ? AND advisor_is_active = true", id).
		Updates(map[string]interface{}{"advisor_is_active": false, "updated_at": time.Now()})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asesor no encontrado o ya inactivo")
	}
	return helper.JsonUpdated(c, "Asesor desactivado", fiber.Map{"advisor_id": id})
}
