package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

func TestParseStatus_Aliases(t *testing.T) {
	for in, want := range map[string]Status{
		"agendada":    StatusScheduled,
		"Realizada":   StatusCompleted,
		"falta_aviso": StatusExcusedAbsence,
		"falta":       StatusUnexcusedAbsence,
		"cancelada":   StatusCancelled,
		"cancelled":   StatusCancelled,
	} {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseStatus("adiada")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanTransition(t *testing.T) {
	terminal := []Status{StatusCompleted, StatusExcusedAbsence, StatusUnexcusedAbsence, StatusCancelled}

	for _, s := range terminal {
		assert.NoError(t, CanTransition(StatusScheduled, s))
		assert.NoError(t, CanTransition(s, StatusScheduled))
		assert.NoError(t, CanTransition(s, s))
	}

	err := CanTransition(StatusCompleted, StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))

	err = CanTransition(StatusCancelled, StatusUnexcusedAbsence)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))
}

func TestReschedule_PreservesIdentity(t *testing.T) {
	student, contract := uint(4), uint(9)
	l := models.Lesson{
		ID:             12,
		StudentID:      &student,
		ContractID:     &contract,
		ProfessionalID: 1,
		StartTime:      at(2026, time.March, 2, 18, 0),
		EndTime:        at(2026, time.March, 2, 19, 30),
		Status:         string(StatusCancelled),
	}
	now := at(2026, time.March, 1, 10, 0)

	Reschedule(&l, at(2026, time.March, 3, 8, 0), 2, now)

	assert.Equal(t, uint(12), l.ID)
	assert.Equal(t, &student, l.StudentID)
	assert.Equal(t, &contract, l.ContractID)
	assert.Equal(t, uint(2), l.ProfessionalID)
	assert.Equal(t, at(2026, time.March, 3, 9, 30), l.EndTime)
	assert.Equal(t, string(StatusScheduled), l.Status)
	require.NotNil(t, l.RescheduledAt)
	assert.Equal(t, now, *l.RescheduledAt)
}
