package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "practicas_backend/internals/features/internship/students/controller"
)

// Estudiante autenticado: su propio perfil.
func StudentSelfRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := studentCtl.NewStudentController(db, v)
	grp := r.Group("/students")
	grp.Get("/me", ctl.GetMe)
	grp.Post("/me/photo", ctl.UploadPhoto)
	grp.Post("/me/cv", ctl.UploadCV)
}

// Coordinación: registro y administración.
func CoordinatorStudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := studentCtl.NewStudentController(db, v)
	grp := r.Group("/students")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id/term", ctl.UpdateTerm)
}
