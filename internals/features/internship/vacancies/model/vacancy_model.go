package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type VacancyStatus string

const (
	VacancyAvailable VacancyStatus = "available"
	VacancyFull      VacancyStatus = "full"
	VacancyClosed    VacancyStatus = "closed" // cierre administrativo, terminal
)

// ErrCapacityExceeded: no quedan cupos libres en la vacante.
var ErrCapacityExceeded = errors.New("vacante sin cupos disponibles")

// VacancyModel — oferta de práctica con cupos limitados.
type VacancyModel struct {
	VacancyID          uuid.UUID      `json:"vacancy_id" gorm:"column:vacancy_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VacancyCompanyID   uuid.UUID      `json:"vacancy_company_id" gorm:"column:vacancy_company_id;type:uuid;not null;index"`
	VacancyTitle       string         `json:"vacancy_title" gorm:"column:vacancy_title;size:300;not null"`
	VacancyArea        string         `json:"vacancy_area" gorm:"column:vacancy_area;size:200"`
	VacancyDescription string         `json:"vacancy_description" gorm:"column:vacancy_description"`

	VacancyTotalSlots    int `json:"vacancy_total_slots" gorm:"column:vacancy_total_slots;not null;default:1"`
	VacancyOccupiedSlots int `json:"vacancy_occupied_slots" gorm:"column:vacancy_occupied_slots;not null;default:0"`

	// Requisitos
	VacancyProgram        string         `json:"vacancy_program" gorm:"column:vacancy_program;size:200;not null"`
	VacancyMinTerm        int            `json:"vacancy_min_term" gorm:"column:vacancy_min_term;not null"`
	VacancySkillsRequired pq.StringArray `json:"vacancy_skills_required,omitempty" gorm:"column:vacancy_skills_required;type:text[]"`

	// Horario y duración
	VacancySchedule       string `json:"vacancy_schedule" gorm:"column:vacancy_schedule;size:200"`
	VacancyDurationMonths int    `json:"vacancy_duration_months" gorm:"column:vacancy_duration_months;not null;default:6"`

	VacancyStatus      VacancyStatus `json:"vacancy_status" gorm:"column:vacancy_status;size:20;not null;default:available"`
	VacancyCreatedByID uuid.UUID     `json:"vacancy_created_by_id" gorm:"column:vacancy_created_by_id;type:uuid;not null"`
	VacancyPublishedAt *time.Time    `json:"vacancy_published_at,omitempty" gorm:"column:vacancy_published_at"`
	VacancyClosesAt    *time.Time    `json:"vacancy_closes_at,omitempty" gorm:"column:vacancy_closes_at"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (VacancyModel) TableName() string {
	return "vacancies"
}

func (v *VacancyModel) AvailableSlots() int {
	return v.VacancyTotalSlots - v.VacancyOccupiedSlots
}

// ReserveSlot muta el contador en memoria. El caller debe tener la fila
// bloqueada (FOR UPDATE) y persistir el resultado en la misma transacción.
func (v *VacancyModel) ReserveSlot() error {
	if v.VacancyStatus == VacancyClosed {
		return ErrCapacityExceeded
	}
	if v.VacancyOccupiedSlots >= v.VacancyTotalSlots {
		return ErrCapacityExceeded
	}
	v.VacancyOccupiedSlots++
	if v.VacancyOccupiedSlots >= v.VacancyTotalSlots {
		v.VacancyStatus = VacancyFull
	}
	return nil
}

// ReleaseSlot libera un cupo. El cierre administrativo nunca se reabre.
func (v *VacancyModel) ReleaseSlot() {
	if v.VacancyOccupiedSlots > 0 {
		v.VacancyOccupiedSlots--
	}
	if v.VacancyStatus == VacancyFull && v.VacancyOccupiedSlots < v.VacancyTotalSlots {
		v.VacancyStatus = VacancyAvailable
	}
}
