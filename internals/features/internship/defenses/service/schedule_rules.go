package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrPastDate: la sustentación debe agendarse a futuro.
	ErrPastDate = errors.New("la fecha de sustentación ya pasó")
	// ErrDuplicateJury: los dos jurados deben ser personas distintas.
	ErrDuplicateJury = errors.New("los jurados deben ser distintos")
)

// ValidateSchedule aplica las reglas puras de agendamiento. La exclusividad
// 0..1 por práctica la resuelve el índice único en la base.
func ValidateSchedule(now, scheduledAt time.Time, jury1, jury2 uuid.UUID) error {
	if !scheduledAt.After(now) {
		return ErrPastDate
	}
	if jury1 == jury2 {
		return ErrDuplicateJury
	}
	return nil
}
