package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"practicas_backend/internals/features/internship/vacancies/model"
)

// ErrCapacityExceeded re-exportado para los callers del ledger.
var ErrCapacityExceeded = model.ErrCapacityExceeded

// Reserve toma un cupo de la vacante. Debe llamarse DENTRO de la transacción
// del caller: bloquea la fila (FOR UPDATE), valida occupied < total e
// incrementa como unidad indivisible. Dos link() concurrentes sobre el último
// cupo: exactamente uno gana, el otro recibe ErrCapacityExceeded.
func Reserve(tx *gorm.DB, vacancyID uuid.UUID) (*model.VacancyModel, error) {
	var v model.VacancyModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vacancy_id = ?", vacancyID).
		First(&v).Error; err != nil {
		return nil, err
	}

	if err := v.ReserveSlot(); err != nil {
		return nil, err
	}

	if err := tx.Model(&model.VacancyModel{}).
		Where("vacancy_id = ?", v.VacancyID).
		Updates(map[string]interface{}{
			"vacancy_occupied_slots": v.VacancyOccupiedSlots,
			"vacancy_status":         v.VacancyStatus,
		}).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// Release devuelve un cupo (cancelación de práctica). El cierre administrativo
// es terminal: release nunca reabre una vacante "closed".
func Release(tx *gorm.DB, vacancyID uuid.UUID) (*model.VacancyModel, error) {
	var v model.VacancyModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("vacancy_id = ?", vacancyID).
		First(&v).Error; err != nil {
		return nil, err
	}

	v.ReleaseSlot()

	if err := tx.Model(&model.VacancyModel{}).
		Where("vacancy_id = ?", v.VacancyID).
		Updates(map[string]interface{}{
			"vacancy_occupied_slots": v.VacancyOccupiedSlots,
			"vacancy_status":         v.VacancyStatus,
		}).Error; err != nil {
		return nil, err
	}
	return &v, nil
}
