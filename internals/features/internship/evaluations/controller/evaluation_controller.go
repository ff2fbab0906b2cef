package controller

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "practicas_backend/internals/helpers"

	d "practicas_backend/internals/features/internship/evaluations/dto"
	m "practicas_backend/internals/features/internship/evaluations/model"
	placementModel "practicas_backend/internals/features/internship/placements/model"
)

type EvaluationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEvaluationController(db *gorm.DB, v *validator.Validate) *EvaluationController {
	return &EvaluationController{DB: db, Validate: v}
}

// Create — el asesor registra una evaluación sobre una práctica activa
// asignada a él. Cierre exige al menos dos por práctica.
func (ctl *EvaluationController) Create(c *fiber.Ctx) error {
	var req d.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	advisorID, err := helper.GetEntityIDFromToken(c)
	if err != nil {
		return err
	}

	placementID, _ := uuid.Parse(req.PlacementID)
	var p placementModel.PlacementModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&p, "placement_id = ?", placementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Práctica no encontrada")
		}
		return helper.WritePGError(c, err)
	}
	if p.PlacementStatus != placementModel.PlacementActive {
		return helper.JsonError(c, fiber.StatusConflict, "Solo prácticas activas aceptan evaluaciones")
	}
	if p.PlacementAdvisorID == nil || *p.PlacementAdvisorID != advisorID {
		return helper.JsonError(c, fiber.StatusForbidden, "La práctica no está asignada al asesor")
	}

	// solo puede existir una evaluación final
	if req.Type == string(m.EvaluationFinal) {
		var finals int64
		if err := ctl.DB.WithContext(c.UserContext()).Model(&m.EvaluationModel{}).
			Where("evaluation_placement_id = ? AND evaluation_type = ?", placementID, m.EvaluationFinal).
			Count(&finals).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if finals > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "La práctica ya tiene evaluación final")
		}
	}

	avg := (req.Technical + req.Objectives + req.Teamwork + req.Initiative + req.Reporting) / 5
	finalScore := math.Round(avg*10) / 10

	e := m.EvaluationModel{
		EvaluationPlacementID: placementID,
		EvaluationType:        m.EvaluationType(req.Type),
		EvaluationAdvisorID:   advisorID,
		EvaluationScores: datatypes.JSONMap{
			m.CriterionTechnical:  req.Technical,
			m.CriterionObjectives: req.Objectives,
			m.CriterionTeamwork:   req.Teamwork,
			m.CriterionInitiative: req.Initiative,
			m.CriterionReporting:  req.Reporting,
		},
		EvaluationFinalScore: finalScore,
		EvaluationRemarks:    req.Remarks,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&e).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Evaluación registrada", d.NewEvaluationResponse(&e))
}

// ListByPlacement — evaluaciones de una práctica.
func (ctl *EvaluationController) ListByPlacement(c *fiber.Ctx) error {
	placementID, err := uuid.Parse(c.Params("placementId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "placementId inválido")
	}

	var evals []m.EvaluationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("evaluation_placement_id = ?", placementID).
		Order("created_at ASC").
		Find(&evals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron listar las evaluaciones")
	}

	out := make([]d.EvaluationResponse, 0, len(evals))
	for i := range evals {
		out = append(out, d.NewEvaluationResponse(&evals[i]))
	}
	return helper.JsonOK(c, "", out)
}
