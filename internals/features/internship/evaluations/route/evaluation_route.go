package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evalCtl "practicas_backend/internals/features/internship/evaluations/controller"
)

// Asesor: registra evaluaciones de desempeño.
func AdvisorEvaluationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := evalCtl.NewEvaluationController(db, v)
	grp := r.Group("/evaluations")
	grp.Post("/", ctl.Create)
	r.Get("/placements/:placementId/evaluations", ctl.ListByPlacement)
}

// Coordinación y estudiante: lectura.
func ReadEvaluationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := evalCtl.NewEvaluationController(db, v)
	r.Get("/placements/:placementId/evaluations", ctl.ListByPlacement)
}
