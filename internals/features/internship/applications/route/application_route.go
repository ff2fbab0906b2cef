package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appCtl "practicas_backend/internals/features/internship/applications/controller"
)

// Estudiante: postularse y consultar sus postulaciones.
func StudentApplicationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := appCtl.NewApplicationController(db, v)
	grp := r.Group("/applications")
	grp.Post("/", ctl.Submit)
	grp.Get("/mine", ctl.ListMine)
}

// Coordinación: ciclo completo de la postulación.
func CoordinatorApplicationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := appCtl.NewApplicationController(db, v)
	grp := r.Group("/applications")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Submit)
	grp.Post("/:id/select", ctl.Select)
	grp.Post("/:id/link", ctl.Link)
	grp.Post("/:id/reject", ctl.Reject)
}
