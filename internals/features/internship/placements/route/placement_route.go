package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	placementCtl "practicas_backend/internals/features/internship/placements/controller"
)

// Estudiante: su práctica, plan de trabajo y progreso de cierre.
func StudentPlacementRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := placementCtl.NewPlacementController(db, v)
	grp := r.Group("/placements")
	grp.Get("/mine", ctl.ListMine)
	grp.Get("/:id", ctl.GetByID)
	grp.Get("/:id/closure", ctl.ClosureProgress)
	grp.Post("/:id/plan", ctl.UploadPlan)
}

// Asesor: prácticas asignadas y progreso.
func AdvisorPlacementRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := placementCtl.NewPlacementController(db, v)
	grp := r.Group("/placements")
	grp.Get("/mine", ctl.ListMine)
	grp.Get("/:id", ctl.GetByID)
	grp.Get("/:id/closure", ctl.ClosureProgress)
}

// Coordinación: administración completa del ciclo de la práctica.
func CoordinatorPlacementRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := placementCtl.NewPlacementController(db, v)
	grp := r.Group("/placements")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Get("/:id/closure", ctl.ClosureProgress)
	grp.Post("/:id/plan/approve", ctl.ApprovePlan)
	grp.Post("/:id/finalize", ctl.Finalize)
	grp.Post("/:id/cancel", ctl.Cancel)
}
