package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtl "practicas_backend/internals/features/notifications/controller"
)

func CoordinatorNotificationRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := notifCtl.NewNotificationController(db, v)
	r.Get("/notifications", ctl.List)
}
