package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "practicas_backend/internals/features/users/auth/controller"
	"practicas_backend/internals/middlewares"
	authmw "practicas_backend/internals/middlewares/auth"
)

func AuthRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := authCtl.NewAuthController(db, v)
	grp := r.Group("/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/login/google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
	grp.Post("/refresh", ctl.Refresh)
	grp.Post("/logout", authmw.AuthMiddleware(db), ctl.Logout)
}
