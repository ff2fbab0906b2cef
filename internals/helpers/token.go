package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken lee c.Locals("user_id").
// 401 si no hay sesión, 400 si el formato es inválido.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user_id del token inválido")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user_id del token inválido")
	}
}

// GetRoleFromToken lee c.Locals("role") (lo setea el middleware de auth).
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals("role").(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Rol no presente en el token")
	}
	return strings.ToLower(strings.TrimSpace(v)), nil
}

// GetEntityIDFromToken lee c.Locals("entity_id"): el id del registro de
// estudiante/docente/coordinador vinculado al usuario. Puede no existir (admin).
func GetEntityIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("entity_id").(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "El usuario no tiene perfil vinculado")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "entity_id del token inválido")
	}
	return id, nil
}
