package service

import (
	"reflect"
	"testing"
)

func TestEvaluateChecklistCompleto(t *testing.T) {
	ok, unmet := Evaluate(ClosureSnapshot{
		PlanApproved:    true,
		Evaluations:     2,
		FollowUps:       4,
		DefenseApproved: true,
	})
	if !ok {
		t.Fatalf("checklist completo debe permitir finalizar, faltantes: %v", unmet)
	}
	if len(unmet) != 0 {
		t.Fatalf("no debía reportar faltantes, reportó %v", unmet)
	}
}

func TestEvaluateReportaTodosLosFaltantes(t *testing.T) {
	// snapshot vacío: los cuatro requisitos incumplidos, en orden estable
	ok, unmet := Evaluate(ClosureSnapshot{})
	if ok {
		t.Fatalf("snapshot vacío no debe permitir finalizar")
	}
	want := []string{ReqPlanApproved, ReqEvaluationsDone, ReqFollowUpsDone, ReqDefenseApproved}
	if !reflect.DeepEqual(unmet, want) {
		t.Fatalf("faltantes = %v, quería %v", unmet, want)
	}
}

func TestEvaluateFaltanteUnico(t *testing.T) {
	cases := []struct {
		name string
		snap ClosureSnapshot
		want string
	}{
		{
			"sin plan aprobado",
			ClosureSnapshot{Evaluations: 2, FollowUps: 4, DefenseApproved: true},
			ReqPlanApproved,
		},
		{
			"una sola evaluación",
			ClosureSnapshot{PlanApproved: true, Evaluations: 1, FollowUps: 4, DefenseApproved: true},
			ReqEvaluationsDone,
		},
		{
			"tres seguimientos",
			ClosureSnapshot{PlanApproved: true, Evaluations: 2, FollowUps: 3, DefenseApproved: true},
			ReqFollowUpsDone,
		},
		{
			"sin sustentación aprobada",
			ClosureSnapshot{PlanApproved: true, Evaluations: 2, FollowUps: 4},
			ReqDefenseApproved,
		},
	}
	for _, tc := range cases {
		ok, unmet := Evaluate(tc.snap)
		if ok {
			t.Fatalf("%s: no debía permitir finalizar", tc.name)
		}
		if len(unmet) != 1 || unmet[0] != tc.want {
			t.Fatalf("%s: faltantes = %v, quería [%s]", tc.name, unmet, tc.want)
		}
	}
}

func TestEvaluateExcedentesNoRestan(t *testing.T) {
	ok, _ := Evaluate(ClosureSnapshot{
		PlanApproved:    true,
		Evaluations:     5,
		FollowUps:       12,
		DefenseApproved: true,
	})
	if !ok {
		t.Fatalf("contar de más no debe bloquear el cierre")
	}
}
