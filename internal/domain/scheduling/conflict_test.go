package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
)

func TestPlace_PartialAcceptance(t *testing.T) {
	g := NewGuard(DefaultWindow())

	var cands []Candidate
	for d := 2; d <= 6; d++ {
		cands = append(cands, Candidate{
			ProfessionalID: 1,
			Interval:       NewInterval(at(2026, time.March, d, 18, 0), time.Hour),
		})
	}

	existing := []Occurrence{
		{ID: 10, ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 3, 18, 30), time.Hour), Status: StatusScheduled},
	}
	blockouts := []BlockOut{
		{From: day(2026, time.March, 5), To: day(2026, time.March, 5), Start: MustClock("17:00"), End: MustClock("19:00")},
	}

	p := g.Place(cands, existing, blockouts)

	require.Len(t, p.Accepted, 3)
	require.Len(t, p.Rejected, 2)
	assert.Equal(t, ReasonExistingLesson, p.Rejected[0].Reason)
	assert.Equal(t, ReasonBlockOut, p.Rejected[1].Reason)
}

func TestPlace_BatchNeverOverlapsItself(t *testing.T) {
	g := NewGuard(DefaultWindow())
	cands := []Candidate{
		{ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 2, 10, 0), time.Hour)},
		{ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 2, 10, 30), time.Hour)},
		{ProfessionalID: 2, Interval: NewInterval(at(2026, time.March, 2, 10, 30), time.Hour)},
	}

	p := g.Place(cands, nil, nil)

	require.Len(t, p.Accepted, 2)
	require.Len(t, p.Rejected, 1)
	assert.Equal(t, ReasonExistingLesson, p.Rejected[0].Reason)

	for i := range p.Accepted {
		for j := i + 1; j < len(p.Accepted); j++ {
			a, b := p.Accepted[i], p.Accepted[j]
			if a.ProfessionalID == b.ProfessionalID {
				assert.False(t, a.Overlaps(b.Interval))
			}
		}
	}
}

func TestCheck_ReasonOrder(t *testing.T) {
	g := NewGuard(DefaultWindow())
	late := Candidate{ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 2, 20, 30), time.Hour)}
	existing := []Occurrence{
		{ID: 1, ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 2, 20, 0), time.Hour), Status: StatusScheduled},
	}

	reason, ok := g.Check(late, existing, nil, 0)
	assert.False(t, ok)
	assert.Equal(t, ReasonOutsideHours, reason)

	be, isBusiness := httperr.AsBusiness(reason.Err())
	require.True(t, isBusiness)
	assert.Equal(t, httperr.KindValidation, be.Kind)
}

func TestCheck_ExcludesMovedLesson(t *testing.T) {
	g := NewGuard(DefaultWindow())
	existing := []Occurrence{
		{ID: 7, ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 2, 10, 0), time.Hour), Status: StatusScheduled},
	}
	moved := Candidate{ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 2, 10, 30), time.Hour)}

	_, ok := g.Check(moved, existing, nil, 7)
	assert.True(t, ok)

	reason, ok := g.Check(moved, existing, nil, 0)
	assert.False(t, ok)
	assert.Equal(t, ReasonExistingLesson, reason)

	be, _ := httperr.AsBusiness(reason.Err())
	assert.Equal(t, httperr.KindConflict, be.Kind)
}

func TestCheck_AdjacentLessonsDoNotOverlap(t *testing.T) {
	g := NewGuard(DefaultWindow())
	existing := []Occurrence{
		{ID: 1, ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 2, 10, 0), time.Hour), Status: StatusScheduled},
	}
	next := Candidate{ProfessionalID: 1, Interval: NewInterval(at(2026, time.March, 2, 11, 0), time.Hour)}

	_, ok := g.Check(next, existing, nil, 0)
	assert.True(t, ok)
}
