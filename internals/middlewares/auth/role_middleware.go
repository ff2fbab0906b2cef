package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"practicas_backend/internals/constants"
)

// OnlyRoles permite el paso solo a los roles indicados.
func OnlyRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("❌ Rol %q sin acceso a %s.", role, feature))
		}
		return c.Next()
	}
}

func OnlyCoordinator(feature string) fiber.Handler {
	return OnlyRoles(feature, constants.CoordinatorAndAbove...)
}

func OnlyAdvisor(feature string) fiber.Handler {
	return OnlyRoles(feature, constants.AdvisorAndAbove...)
}

func OnlyStudent(feature string) fiber.Handler {
	return OnlyRoles(feature, constants.RoleStudent)
}
