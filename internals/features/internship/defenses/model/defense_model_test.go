package model

import (
	"errors"
	"testing"
)

func TestCancelDesdeScheduled(t *testing.T) {
	df := DefenseModel{DefenseStatus: DefenseScheduled}
	if err := df.Cancel("el jurado no puede asistir"); err != nil {
		t.Fatalf("cancelar agendada: %v", err)
	}
	if df.DefenseStatus != DefenseCancelled {
		t.Fatalf("estado = %q, quería %q", df.DefenseStatus, DefenseCancelled)
	}
	if df.DefenseRemarks != "el jurado no puede asistir" {
		t.Fatalf("el motivo debe quedar en las observaciones, quedó %q", df.DefenseRemarks)
	}
}

func TestCancelAnexaMotivoAObservaciones(t *testing.T) {
	df := DefenseModel{DefenseStatus: DefenseScheduled, DefenseRemarks: "reprogramada una vez"}
	if err := df.Cancel("empresa cerró el convenio"); err != nil {
		t.Fatalf("cancelar agendada: %v", err)
	}
	want := "reprogramada una vez | empresa cerró el convenio"
	if df.DefenseRemarks != want {
		t.Fatalf("observaciones = %q, quería %q", df.DefenseRemarks, want)
	}
}

func TestCancelEsTerminal(t *testing.T) {
	// cancelled y approved no admiten más transiciones
	cases := []DefenseStatus{DefenseCancelled, DefenseApproved}
	for _, status := range cases {
		df := DefenseModel{DefenseStatus: status, DefenseRemarks: "acta firmada"}
		if err := df.Cancel("otro motivo"); !errors.Is(err, ErrNotCancellable) {
			t.Fatalf("cancelar desde %q debe dar ErrNotCancellable, dio %v", status, err)
		}
		if df.DefenseStatus != status {
			t.Fatalf("el estado no debe mutar tras el rechazo, quedó %q", df.DefenseStatus)
		}
		if df.DefenseRemarks != "acta firmada" {
			t.Fatalf("las observaciones no deben mutar tras el rechazo, quedaron %q", df.DefenseRemarks)
		}
	}
}
