package service

import (
	"testing"

	"practicas_backend/internals/features/internship/students/model"
)

func TestMinimumTermPorPrograma(t *testing.T) {
	cases := []struct {
		program string
		want    int
	}{
		{"Administración de Empresas", 2},
		{"administración de empresas", 2},
		{"Ingeniería de Software", 4},
		{"Ingeniería Industrial", 4},
		{"Diseño Gráfico", DefaultMinimumTerm}, // programa no listado
		{"  Ingeniería de Software  ", 4},
	}
	for _, tc := range cases {
		if got := MinimumTerm(tc.program); got != tc.want {
			t.Fatalf("MinimumTerm(%q) = %d, quería %d", tc.program, got, tc.want)
		}
	}
}

func TestIsEligibleBordes(t *testing.T) {
	// administración exige 2: el semestre 2 ya es apto
	if !IsEligible("Administración de Empresas", 2) {
		t.Fatalf("administración semestre 2 debe ser apto")
	}
	if IsEligible("Administración de Empresas", 1) {
		t.Fatalf("administración semestre 1 no debe ser apto")
	}
	// software exige 4: el semestre 3 queda por fuera
	if IsEligible("Ingeniería de Software", 3) {
		t.Fatalf("software semestre 3 no debe ser apto")
	}
	if !IsEligible("Ingeniería de Software", 4) {
		t.Fatalf("software semestre 4 debe ser apto")
	}
}

func TestRecomputeStatusNoDegradaPlacedNiCompleted(t *testing.T) {
	// aunque el semestre baje del mínimo, placed/completed se conservan
	if got := RecomputeStatus(model.StudentPlaced, "Ingeniería de Software", 1); got != model.StudentPlaced {
		t.Fatalf("placed no debe degradarse, quedó %q", got)
	}
	if got := RecomputeStatus(model.StudentCompleted, "Ingeniería de Software", 1); got != model.StudentCompleted {
		t.Fatalf("completed no debe degradarse, quedó %q", got)
	}
}

func TestRecomputeStatusMueveEligibleIneligible(t *testing.T) {
	if got := RecomputeStatus(model.StudentIneligible, "Ingeniería Industrial", 4); got != model.StudentEligible {
		t.Fatalf("semestre 4 debe pasar a eligible, quedó %q", got)
	}
	if got := RecomputeStatus(model.StudentEligible, "Ingeniería Industrial", 3); got != model.StudentIneligible {
		t.Fatalf("semestre 3 debe pasar a ineligible, quedó %q", got)
	}
}
