package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	j1 := uuid.New()
	j2 := uuid.New()

	if err := ValidateSchedule(now, now.Add(48*time.Hour), j1, j2); err != nil {
		t.Fatalf("agenda válida rechazada: %v", err)
	}

	if err := ValidateSchedule(now, now.Add(-time.Hour), j1, j2); !errors.Is(err, ErrPastDate) {
		t.Fatalf("fecha pasada debe dar ErrPastDate, dio %v", err)
	}
	// el instante exacto tampoco vale: debe ser estrictamente futuro
	if err := ValidateSchedule(now, now, j1, j2); !errors.Is(err, ErrPastDate) {
		t.Fatalf("fecha igual a ahora debe dar ErrPastDate, dio %v", err)
	}

	if err := ValidateSchedule(now, now.Add(48*time.Hour), j1, j1); !errors.Is(err, ErrDuplicateJury) {
		t.Fatalf("jurado repetido debe dar ErrDuplicateJury, dio %v", err)
	}
}
