package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	companyCtl "practicas_backend/internals/features/internship/companies/controller"
)

// Public: registro de empresas.
func PublicCompanyRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := companyCtl.NewCompanyController(db, v)
	grp := r.Group("/companies")
	grp.Post("/register", ctl.Register)
}

// Coordinación: revisión y administración.
func CoordinatorCompanyRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := companyCtl.NewCompanyController(db, v)
	grp := r.Group("/companies")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/:id/approve", ctl.Approve)
	grp.Post("/:id/reject", ctl.Reject)
	grp.Post("/:id/deactivate", ctl.Deactivate)
	grp.Post("/:id/documents", ctl.UploadDocuments)
}
