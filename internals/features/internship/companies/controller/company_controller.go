package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "practicas_backend/internals/helpers"
	"practicas_backend/internals/helpers/docstore"

	d "practicas_backend/internals/features/internship/companies/dto"
	m "practicas_backend/internals/features/internship/companies/model"
	notify "practicas_backend/internals/features/notifications/service"
)

type CompanyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCompanyController(db *gorm.DB, v *validator.Validate) *CompanyController {
	return &CompanyController{DB: db, Validate: v}
}

// Register — registro público de empresa; queda pendiente de aprobación.
func (ctl *CompanyController) Register(c *fiber.Ctx) error {
	var req d.RegisterCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	company := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(company).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una empresa con ese NIT")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Empresa registrada, pendiente de aprobación", d.NewCompanyResponse(company))
}

func (ctl *CompanyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&m.CompanyModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("company_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las empresas")
	}

	var companies []m.CompanyModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&companies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las empresas")
	}

	out := make([]d.CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, d.NewCompanyResponse(&companies[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *CompanyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var company m.CompanyModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&company, "company_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.NewCompanyResponse(&company))
}

// Approve — transición única pending → approved; habilita crear vacantes.
func (ctl *CompanyController) Approve(c *fiber.Ctx) error {
	return ctl.review(c, m.CompanyApproved)
}

// Reject — pending → rejected; exige motivo.
func (ctl *CompanyController) Reject(c *fiber.Ctx) error {
	return ctl.review(c, m.CompanyRejected)
}

func (ctl *CompanyController) review(c *fiber.Ctx, target m.CompanyStatus) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.ReviewCompanyRequest
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		req = d.ReviewCompanyRequest{}
	}
	if target == m.CompanyRejected && strings.TrimSpace(req.Remarks) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "El rechazo requiere un motivo")
	}

	coordinatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var company m.CompanyModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&company, "company_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	if company.CompanyStatus != m.CompanyPending {
		return helper.JsonError(c, fiber.StatusConflict, "La empresa ya fue revisada")
	}

	now := time.Now()
	updates := map[string]interface{}{
		"company_status":         target,
		"company_approved_by_id": coordinatorID,
		"company_approved_at":    now,
		"company_remarks":        req.Remarks,
		"updated_at":             now,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&company).Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if target == m.CompanyApproved {
		notify.Emit(ctl.DB, notify.EventCompanyApproved, map[string]interface{}{
			"company_id":   company.CompanyID.String(),
			"company_name": company.CompanyName,
		})
	}

	company.CompanyStatus = target
	company.CompanyRemarks = req.Remarks
	return helper.JsonUpdated(c, "Empresa revisada", d.NewCompanyResponse(&company))
}

// Deactivate — approved → inactive (empresa retirada).
func (ctl *CompanyController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.UserContext()).Model(&m.CompanyModel{}).
		Where("company_id = ? AND company_status = ?", id, m.CompanyApproved).
		Updates(map[string]interface{}{"company_status": m.CompanyInactive, "updated_at": time.Now()})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Solo empresas aprobadas pueden desactivarse")
	}
	return helper.JsonUpdated(c, "Empresa desactivada", fiber.Map{"company_id": id})
}

// UploadDocuments — cámara de comercio y/o RUT (PDF) al document store.
func (ctl *CompanyController) UploadDocuments(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var company m.CompanyModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&company, "company_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Empresa no encontrada")
		}
		return helper.WritePGError(c, err)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if fh, err := c.FormFile("chamber_doc"); err == nil {
		url, err := docstore.UploadFile(docstore.KindCompanyDoc, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["company_chamber_doc_url"] = url
	}
	if fh, err := c.FormFile("tax_doc"); err == nil {
		url, err := docstore.UploadFile(docstore.KindCompanyDoc, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["company_tax_doc_url"] = url
	}
	if len(updates) == 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Adjunta chamber_doc o tax_doc")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Model(&company).Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Documentos cargados", fiber.Map{"company_id": id})
}
