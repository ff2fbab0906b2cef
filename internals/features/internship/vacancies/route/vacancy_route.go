package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	vacancyCtl "practicas_backend/internals/features/internship/vacancies/controller"
)

// Public: catálogo de vacantes disponibles.
func PublicVacancyRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := vacancyCtl.NewVacancyController(db, v)
	grp := r.Group("/vacancies")
	grp.Get("/", ctl.ListAvailable)
	grp.Get("/:id", ctl.GetByID)
}

// Coordinación: administración completa.
func CoordinatorVacancyRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := vacancyCtl.NewVacancyController(db, v)
	grp := r.Group("/vacancies")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Post("/:id/close", ctl.Close)
}
