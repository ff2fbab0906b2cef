package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type DefenseStatus string

const (
	DefenseScheduled DefenseStatus = "scheduled"
	DefenseApproved  DefenseStatus = "approved"  // terminal
	DefenseCancelled DefenseStatus = "cancelled" // terminal
)

// DefenseModel — sustentación que cierra una práctica. 0..1 por práctica:
// el índice único sobre placement_id hace perder la carrera al segundo
// schedule concurrente (23505).
type DefenseModel struct {
	DefenseID           uuid.UUID `json:"defense_id" gorm:"column:defense_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DefensePlacementID  uuid.UUID `json:"defense_placement_id" gorm:"column:defense_placement_id;type:uuid;not null;uniqueIndex:uq_defense_placement"`
	DefenseScheduledAt  time.Time `json:"defense_scheduled_at" gorm:"column:defense_scheduled_at;not null"`
	DefenseVenue        string    `json:"defense_venue" gorm:"column:defense_venue;size:200"`

	DefenseJury1ID uuid.UUID `json:"defense_jury1_id" gorm:"column:defense_jury1_id;type:uuid;not null"`
	DefenseJury2ID uuid.UUID `json:"defense_jury2_id" gorm:"column:defense_jury2_id;type:uuid;not null"`

	DefenseStatus       DefenseStatus `json:"defense_status" gorm:"column:defense_status;size:20;not null;default:scheduled"`
	DefenseGrade        *float64      `json:"defense_grade,omitempty" gorm:"column:defense_grade;type:numeric(3,1)"`
	DefenseRemarks      string        `json:"defense_remarks,omitempty" gorm:"column:defense_remarks"`
	DefenseMinutesURL   string        `json:"defense_minutes_url,omitempty" gorm:"column:defense_minutes_url"`
	DefenseRegisteredBy uuid.UUID     `json:"defense_registered_by" gorm:"column:defense_registered_by;type:uuid;not null"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at"`
}

func (DefenseModel) TableName() string {
	return "defenses"
}

// ErrNotCancellable: solo una sustentación agendada admite cancelación.
var ErrNotCancellable = errors.New("solo sustentaciones agendadas pueden cancelarse")

// Cancel — scheduled → cancelled, terminal. La fila se conserva: el índice
// único sigue bloqueando un nuevo agendamiento mientras exista, y el motivo
// queda anexado a las observaciones.
func (d *DefenseModel) Cancel(reason string) error {
	if d.DefenseStatus != DefenseScheduled {
		return ErrNotCancellable
	}
	d.DefenseStatus = DefenseCancelled
	if d.DefenseRemarks == "" {
		d.DefenseRemarks = reason
	} else {
		d.DefenseRemarks = d.DefenseRemarks + " | " + reason
	}
	return nil
}
