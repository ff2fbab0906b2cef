package model

import (
	"errors"
	"testing"
)

func TestReserveSlotHastaLlenar(t *testing.T) {
	v := VacancyModel{VacancyTotalSlots: 2, VacancyStatus: VacancyAvailable}

	if err := v.ReserveSlot(); err != nil {
		t.Fatalf("primer cupo: %v", err)
	}
	if v.VacancyStatus != VacancyAvailable || v.VacancyOccupiedSlots != 1 {
		t.Fatalf("tras 1 reserva: status=%q occupied=%d", v.VacancyStatus, v.VacancyOccupiedSlots)
	}

	if err := v.ReserveSlot(); err != nil {
		t.Fatalf("segundo cupo: %v", err)
	}
	if v.VacancyStatus != VacancyFull {
		t.Fatalf("al ocupar el último cupo debe quedar full, quedó %q", v.VacancyStatus)
	}

	// occupied nunca supera total
	if err := v.ReserveSlot(); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("vacante llena debe rechazar con ErrCapacityExceeded, dio %v", err)
	}
	if v.VacancyOccupiedSlots != 2 {
		t.Fatalf("occupied mutó tras el rechazo: %d", v.VacancyOccupiedSlots)
	}
}

func TestReserveSlotVacanteCerrada(t *testing.T) {
	v := VacancyModel{VacancyTotalSlots: 3, VacancyOccupiedSlots: 1, VacancyStatus: VacancyClosed}
	if err := v.ReserveSlot(); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("cerrada debe rechazar aunque queden cupos, dio %v", err)
	}
}

func TestReleaseSlotReabreFull(t *testing.T) {
	v := VacancyModel{VacancyTotalSlots: 1, VacancyOccupiedSlots: 1, VacancyStatus: VacancyFull}
	v.ReleaseSlot()
	if v.VacancyOccupiedSlots != 0 {
		t.Fatalf("occupied = %d, quería 0", v.VacancyOccupiedSlots)
	}
	if v.VacancyStatus != VacancyAvailable {
		t.Fatalf("full debe reabrirse a available, quedó %q", v.VacancyStatus)
	}
}

func TestReleaseSlotNuncaReabreCerrada(t *testing.T) {
	v := VacancyModel{VacancyTotalSlots: 2, VacancyOccupiedSlots: 2, VacancyStatus: VacancyClosed}
	v.ReleaseSlot()
	if v.VacancyStatus != VacancyClosed {
		t.Fatalf("el cierre administrativo es terminal, quedó %q", v.VacancyStatus)
	}
	if v.VacancyOccupiedSlots != 1 {
		t.Fatalf("occupied = %d, quería 1", v.VacancyOccupiedSlots)
	}
}

func TestReleaseSlotPisoCero(t *testing.T) {
	v := VacancyModel{VacancyTotalSlots: 2, VacancyOccupiedSlots: 0, VacancyStatus: VacancyAvailable}
	v.ReleaseSlot()
	if v.VacancyOccupiedSlots != 0 {
		t.Fatalf("occupied no puede ser negativo: %d", v.VacancyOccupiedSlots)
	}
}
