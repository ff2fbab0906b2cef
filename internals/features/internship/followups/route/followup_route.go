package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	followupCtl "practicas_backend/internals/features/internship/followups/controller"
)

// Estudiante: registra y corrige sus seguimientos semanales.
func StudentFollowUpRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := followupCtl.NewFollowUpController(db, v)
	grp := r.Group("/followups")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Post("/:id/evidence", ctl.UploadEvidence)
	r.Get("/placements/:placementId/followups", ctl.ListByPlacement)
}

// Asesor: revisa y califica.
func AdvisorFollowUpRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := followupCtl.NewFollowUpController(db, v)
	grp := r.Group("/followups")
	grp.Post("/:id/grade", ctl.Grade)
	r.Get("/placements/:placementId/followups", ctl.ListByPlacement)
}

// Coordinación: lectura.
func CoordinatorFollowUpRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := followupCtl.NewFollowUpController(db, v)
	r.Get("/placements/:placementId/followups", ctl.ListByPlacement)
}
