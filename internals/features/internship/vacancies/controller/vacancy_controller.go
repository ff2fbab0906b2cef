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

	companyModel "practicas_backend/internals/features/internship/companies/model"
	d "practicas_backend/internals/features/internship/vacancies/dto"
	m "practicas_backend/internals/features/internship/vacancies/model"
)

type VacancyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVacancyController(db *gorm.DB, v *validator.Validate) *VacancyController {
	return &VacancyController{DB: db, Validate: v}
}

// Create — solo bajo empresa aprobada.
func (ctl *VacancyController) Create(c *fiber.Ctx) error {
	var req d.CreateVacancyRequest
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

	companyID, _ := uuid.Parse(req.CompanyID)
	var company companyModel.CompanyModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&company, "company_id = ?", companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if company.CompanyStatus != companyModel.CompanyApproved {
		return helper.JsonError(c, fiber.StatusConflict, "Solo empresas aprobadas pueden publicar vacantes")
	}

	vacancy := req.ToModel(coordinatorID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(vacancy).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Vacante creada", d.NewVacancyResponse(vacancy))
}

// List — público lista disponibles; coordinación puede filtrar por estado.
func (ctl *VacancyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.VacancyModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("vacancy_status = ?", status)
	}
	if program := strings.TrimSpace(c.Query("program")); program != "" {
		q = q.Where("vacancy_program ILIKE ?", "%"+program+"%")
	}
	if companyID := strings.TrimSpace(c.Query("company_id")); companyID != "" {
		q = q.Where("vacancy_company_id = ?", companyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las vacantes")
	}

	var vacancies []m.VacancyModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&vacancies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las vacantes")
	}

	out := make([]d.VacancyResponse, 0, len(vacancies))
	for i := range vacancies {
		out = append(out, d.NewVacancyResponse(&vacancies[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ListAvailable — vista pública: solo vacantes con cupos.
func (ctl *VacancyController) ListAvailable(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.VacancyModel{}).
		Where("vacancy_status = ?", m.VacancyAvailable)
	if program := strings.TrimSpace(c.Query("program")); program != "" {
		q = q.Where("vacancy_program ILIKE ?", "%"+program+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las vacantes")
	}

	var vacancies []m.VacancyModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&vacancies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las vacantes")
	}

	out := make([]d.VacancyResponse, 0, len(vacancies))
	for i := range vacancies {
		out = append(out, d.NewVacancyResponse(&vacancies[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *VacancyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var vacancy m.VacancyModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&vacancy, "vacancy_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vacante no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.NewVacancyResponse(&vacancy))
}

// Update — bajo lock: los cupos totales nunca bajan de los ya ocupados.
func (ctl *VacancyController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateVacancyRequest
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

	var vacancy m.VacancyModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vacancy_id = ?", id).
		First(&vacancy).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vacante no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	if vacancy.VacancyStatus == m.VacancyClosed {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusConflict, "La vacante está cerrada")
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Title != nil {
		updates["vacancy_title"] = *req.Title
	}
	if req.Area != nil {
		updates["vacancy_area"] = *req.Area
	}
	if req.Description != nil {
		updates["vacancy_description"] = *req.Description
	}
	if req.MinTerm != nil {
		updates["vacancy_min_term"] = *req.MinTerm
	}
	if req.Schedule != nil {
		updates["vacancy_schedule"] = *req.Schedule
	}
	if req.ClosesAt != nil {
		updates["vacancy_closes_at"] = *req.ClosesAt
	}
	if req.SkillsRequired != nil {
		updates["vacancy_skills_required"] = req.SkillsRequired
	}
	if req.TotalSlots != nil {
		if *req.TotalSlots < vacancy.VacancyOccupiedSlots {
			tx.Rollback()
			return helper.JsonError(c, fiber.StatusConflict, "No puedes reducir los cupos por debajo de los ya ocupados")
		}
		updates["vacancy_total_slots"] = *req.TotalSlots
		// ajustar estado derivado de los contadores
		if *req.TotalSlots > vacancy.VacancyOccupiedSlots && vacancy.VacancyStatus == m.VacancyFull {
			updates["vacancy_status"] = m.VacancyAvailable
		}
		if *req.TotalSlots == vacancy.VacancyOccupiedSlots {
			updates["vacancy_status"] = m.VacancyFull
		}
	}

	if err := tx.Model(&m.VacancyModel{}).Where("vacancy_id = ?", id).Updates(updates).Error; err != nil {
		tx.Rollback()
		return helper.WritePGError(c, err)
	}
	if err := tx.Commit().Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).First(&vacancy, "vacancy_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Vacante actualizada", d.NewVacancyResponse(&vacancy))
}

// Close — cierre administrativo, terminal. Nunca lo reabre un release.
func (ctl *VacancyController) Close(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&m.VacancyModel{}).
		Where("vacancy_id = ? AND vacancy_status <> ?", id, m.VacancyClosed).
		Updates(map[string]interface{}{"vacancy_status": m.VacancyClosed, "updated_at": time.Now()})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "La vacante no existe o ya está cerrada")
	}
	return helper.JsonUpdated(c, "Vacante cerrada", fiber.Map{"vacancy_id": id})
}
