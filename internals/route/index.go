package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authmw "practicas_backend/internals/middlewares/auth"

	advisorRoute "practicas_backend/internals/features/internship/advisors/route"
	applicationRoute "practicas_backend/internals/features/internship/applications/route"
	companyRoute "practicas_backend/internals/features/internship/companies/route"
	defenseRoute "practicas_backend/internals/features/internship/defenses/route"
	evaluationRoute "practicas_backend/internals/features/internship/evaluations/route"
	followupRoute "practicas_backend/internals/features/internship/followups/route"
	placementRoute "practicas_backend/internals/features/internship/placements/route"
	studentRoute "practicas_backend/internals/features/internship/students/route"
	vacancyRoute "practicas_backend/internals/features/internship/vacancies/route"
	notificationRoute "practicas_backend/internals/features/notifications/route"
	authRoute "practicas_backend/internals/features/users/auth/route"
)

// SetupRoutes arma el árbol de rutas por audiencia:
//
//	/api/auth    público (login, registro, refresh, logout)
//	/api/public  catálogo abierto (empresas, vacantes disponibles)
//	/api/s       estudiante autenticado
//	/api/d       docente asesor autenticado
//	/api/c       coordinación
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	validate := validator.New()

	api := app.Group("/api")

	// ---- público ----
	authRoute.AuthRoutes(api, db, validate)
	public := api.Group("/public")
	companyRoute.PublicCompanyRoutes(public, db, validate)
	vacancyRoute.PublicVacancyRoutes(public, db, validate)

	// ---- estudiante ----
	s := api.Group("/s", authmw.AuthMiddleware(db), authmw.OnlyStudent("portal estudiante"))
	studentRoute.StudentSelfRoutes(s, db, validate)
	applicationRoute.StudentApplicationRoutes(s, db, validate)
	placementRoute.StudentPlacementRoutes(s, db, validate)
	followupRoute.StudentFollowUpRoutes(s, db, validate)
	defenseRoute.ReadDefenseRoutes(s, db, validate)
	evaluationRoute.ReadEvaluationRoutes(s, db, validate)

	// ---- docente asesor ----
	dGrp := api.Group("/d", authmw.AuthMiddleware(db), authmw.OnlyAdvisor("portal asesor"))
	advisorRoute.AdvisorSelfRoutes(dGrp, db, validate)
	placementRoute.AdvisorPlacementRoutes(dGrp, db, validate)
	followupRoute.AdvisorFollowUpRoutes(dGrp, db, validate)
	evaluationRoute.AdvisorEvaluationRoutes(dGrp, db, validate)
	defenseRoute.ReadDefenseRoutes(dGrp, db, validate)

	// ---- coordinación ----
	cGrp := api.Group("/c", authmw.AuthMiddleware(db), authmw.OnlyCoordinator("coordinación de prácticas"))
	companyRoute.CoordinatorCompanyRoutes(cGrp, db, validate)
	vacancyRoute.CoordinatorVacancyRoutes(cGrp, db, validate)
	studentRoute.CoordinatorStudentRoutes(cGrp, db, validate)
	advisorRoute.CoordinatorAdvisorRoutes(cGrp, db, validate)
	applicationRoute.CoordinatorApplicationRoutes(cGrp, db, validate)
	placementRoute.CoordinatorPlacementRoutes(cGrp, db, validate)
	followupRoute.CoordinatorFollowUpRoutes(cGrp, db, validate)
	defenseRoute.CoordinatorDefenseRoutes(cGrp, db, validate)
	evaluationRoute.ReadEvaluationRoutes(cGrp, db, validate)
	notificationRoute.CoordinatorNotificationRoutes(cGrp, db, validate)
}
