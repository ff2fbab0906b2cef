package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"practicas_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra los middlewares base en orden.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.RequestLogger())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
