package service

import (
	"strings"

	"practicas_backend/internals/features/internship/students/model"
)

// Semestre mínimo por defecto para programas no listados.
const DefaultMinimumTerm = 4

// Tabla fija de requisitos por programa académico.
var minimumTermByProgram = map[string]int{
	"administración de empresas": 2,
	"ingeniería de software":     4,
	"ingeniería industrial":      4,
}

// MinimumTerm devuelve el semestre mínimo requerido para el programa.
func MinimumTerm(program string) int {
	if t, ok := minimumTermByProgram[strings.ToLower(strings.TrimSpace(program))]; ok {
		return t
	}
	return DefaultMinimumTerm
}

// IsEligible: término >= mínimo del programa.
func IsEligible(program string, term int) bool {
	return term >= MinimumTerm(program)
}

// RecomputeStatus aplica la regla de recomputación al cambiar el semestre:
// solo mueve entre eligible/ineligible. Un estudiante placed o completed
// nunca es degradado por recomputación.
func RecomputeStatus(current model.StudentStatus, program string, term int) model.StudentStatus {
	switch current {
	case model.StudentPlaced, model.StudentCompleted:
		return current
	}
	if IsEligible(program, term) {
		return model.StudentEligible
	}
	return model.StudentIneligible
}
