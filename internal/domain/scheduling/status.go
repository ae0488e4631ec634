package scheduling

import (
	"strings"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
)

// ===============================
// Lesson Status
// ===============================

type Status string

const (
	StatusScheduled        Status = "scheduled"
	StatusCompleted        Status = "completed"
	StatusExcusedAbsence   Status = "excused_absence"
	StatusUnexcusedAbsence Status = "unexcused_absence"
	StatusCancelled        Status = "cancelled"
)

var statusAliases = map[string]Status{
	"scheduled":         StatusScheduled,
	"agendada":          StatusScheduled,
	"completed":         StatusCompleted,
	"realizada":         StatusCompleted,
	"excused_absence":   StatusExcusedAbsence,
	"falta_aviso":       StatusExcusedAbsence,
	"unexcused_absence": StatusUnexcusedAbsence,
	"falta":             StatusUnexcusedAbsence,
	"cancelled":         StatusCancelled,
	"cancelada":         StatusCancelled,
}

func ParseStatus(s string) (Status, error) {
	st, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", httperr.Validationf("invalid_status", "Status inválido: %q.", s)
	}
	return st, nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// Blocking lessons occupy the professional's calendar.
func (s Status) Blocking() bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition: scheduled moves to any terminal status, terminal statuses
// only reset to scheduled. Same-state is a no-op.
func CanTransition(current, target Status) error {
	if current == target {
		return nil
	}
	if current == StatusScheduled || target == StatusScheduled {
		if _, ok := statusAliases[string(target)]; ok {
			return nil
		}
	}
	return httperr.Validationf(
		"invalid_status_transition",
		"Não é possível alterar o status de %s para %s.", current, target,
	)
}

var statusTokens = map[Status]string{
	StatusScheduled:        "agendada",
	StatusCompleted:        "realizada",
	StatusExcusedAbsence:   "falta_aviso",
	StatusUnexcusedAbsence: "falta",
	StatusCancelled:        "cancelada",
}

// Token is the Portuguese status name shown to users.
func (s Status) Token() string {
	if t, ok := statusTokens[s]; ok {
		return t
	}
	return string(s)
}
