package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	defenseCtl "practicas_backend/internals/features/internship/defenses/controller"
)

// Coordinación: agenda, aprueba, cancela y adjunta el acta.
func CoordinatorDefenseRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := defenseCtl.NewDefenseController(db, v)
	grp := r.Group("/defenses")
	grp.Post("/", ctl.Schedule)
	grp.Post("/:id/approve", ctl.Approve)
	grp.Post("/:id/cancel", ctl.Cancel)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/minutes", ctl.UploadMinutes)
	r.Get("/placements/:placementId/defense", ctl.GetByPlacement)
}

// Estudiante y asesor: consulta.
func ReadDefenseRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := defenseCtl.NewDefenseController(db, v)
	r.Get("/placements/:placementId/defense", ctl.GetByPlacement)
}
