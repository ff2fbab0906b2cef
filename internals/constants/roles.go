package constants

import "fmt"

const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleStudent     = "student"
	RoleAdvisor     = "advisor"
)

// Plantillas de error por rol
const (
	ErrOnlyCoordinatorCanAccess = "❌ Solo coordinación puede acceder a %s."
	ErrOnlyStudentCanAccess     = "❌ Solo estudiantes pueden acceder a %s."
	ErrOnlyAdvisorCanAccess     = "❌ Solo docentes asesores pueden acceder a %s."
)

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentCanAccess, feature)
}

func RoleErrorAdvisor(feature string) string {
	return fmt.Sprintf(ErrOnlyAdvisorCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCoordinator,
		RoleStudent,
		RoleAdvisor,
	}

	CoordinatorAndAbove = []string{
		RoleCoordinator,
		RoleAdmin,
	}

	AdvisorAndAbove = []string{
		RoleAdvisor,
		RoleCoordinator,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
