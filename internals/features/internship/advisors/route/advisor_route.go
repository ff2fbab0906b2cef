package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	advisorCtl "practicas_backend/internals/features/internship/advisors/controller"
)

// Asesor autenticado: su foto de perfil.
func AdvisorSelfRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := advisorCtl.NewAdvisorController(db, v)
	r.Post("/advisors/me/photo", ctl.UploadPhoto)
}

// Coordinación: administración de asesores y tutores de empresa.
func CoordinatorAdvisorRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	advisors := advisorCtl.NewAdvisorController(db, v)
	grp := r.Group("/advisors")
	grp.Get("/", advisors.List)
	grp.Get("/:id", advisors.GetByID)
	grp.Post("/", advisors.Create)
	grp.Patch("/:id/deactivate", advisors.Deactivate)

	tutors := advisorCtl.NewTutorController(db, v)
	tg := r.Group("/tutors")
	tg.Post("/", tutors.Create)
	tg.Patch("/:id/deactivate", tutors.Deactivate)
	r.Get("/companies/:companyId/tutors", tutors.ListByCompany)
}
