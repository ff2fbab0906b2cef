package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	defenseModel "practicas_backend/internals/features/internship/defenses/model"
	evalModel "practicas_backend/internals/features/internship/evaluations/model"
	followModel "practicas_backend/internals/features/internship/followups/model"
	"practicas_backend/internals/features/internship/placements/model"
)

// Requisitos del checklist de cierre (códigos legibles por máquina).
const (
	ReqPlanApproved    = "plan_approved"
	ReqEvaluationsDone = "evaluations_complete" // >= 2 evaluaciones
	ReqFollowUpsDone   = "followups_complete"   // >= 4 seguimientos
	ReqDefenseApproved = "defense_approved"
)

const (
	MinEvaluations = 2
	MinFollowUps   = 4
)

// ClosureSnapshot — estado agregado que decide el cierre. Se computa en
// lectura (nunca se cachea) y Evaluate es pura sobre él.
type ClosureSnapshot struct {
	PlanApproved    bool  `json:"plan_approved"`
	Evaluations     int64 `json:"evaluations"`
	FollowUps       int64 `json:"followups"`
	DefenseApproved bool  `json:"defense_approved"`
}

// Evaluate devuelve si la práctica puede finalizar y TODOS los requisitos
// incumplidos (no solo el primero).
func Evaluate(s ClosureSnapshot) (bool, []string) {
	var unmet []string
	if !s.PlanApproved {
		unmet = append(unmet, ReqPlanApproved)
	}
	if s.Evaluations < MinEvaluations {
		unmet = append(unmet, ReqEvaluationsDone)
	}
	if s.FollowUps < MinFollowUps {
		unmet = append(unmet, ReqFollowUpsDone)
	}
	if !s.DefenseApproved {
		unmet = append(unmet, ReqDefenseApproved)
	}
	return len(unmet) == 0, unmet
}

// Snapshot junta los conteos relacionados a la práctica.
func Snapshot(db *gorm.DB, placement *model.PlacementModel) (ClosureSnapshot, error) {
	s := ClosureSnapshot{PlanApproved: placement.PlacementPlanApproved}

	if err := db.Model(&evalModel.EvaluationModel{}).
		Where("evaluation_placement_id = ?", placement.PlacementID).
		Count(&s.Evaluations).Error; err != nil {
		return s, err
	}

	if err := db.Model(&followModel.WeeklyFollowUpModel{}).
		Where("followup_placement_id = ?", placement.PlacementID).
		Count(&s.FollowUps).Error; err != nil {
		return s, err
	}

	var approvedDefenses int64
	if err := db.Model(&defenseModel.DefenseModel{}).
		Where("defense_placement_id = ? AND defense_status = ?", placement.PlacementID, defenseModel.DefenseApproved).
		Count(&approvedDefenses).Error; err != nil {
		return s, err
	}
	s.DefenseApproved = approvedDefenses > 0

	return s, nil
}

// CanFinalize — snapshot + evaluación en un paso.
func CanFinalize(db *gorm.DB, placementID uuid.UUID) (bool, []string, ClosureSnapshot, error) {
	var p model.PlacementModel
	if err := db.Where("placement_id = ?", placementID).First(&p).Error; err != nil {
		return false, nil, ClosureSnapshot{}, err
	}
	snap, err := Snapshot(db, &p)
	if err != nil {
		return false, nil, snap, err
	}
	ok, unmet := Evaluate(snap)
	return ok, unmet, snap, nil
}
