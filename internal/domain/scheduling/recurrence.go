package scheduling

import (
	"strings"
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
)

type Recurrence string

const (
	Monthly    Recurrence = "mensal"
	Quarterly  Recurrence = "trimestral"
	Semiannual Recurrence = "semestral"
	Annual     Recurrence = "anual"
)

var recurrenceAliases = map[string]Recurrence{
	"mensal":     Monthly,
	"monthly":    Monthly,
	"trimestral": Quarterly,
	"quarterly":  Quarterly,
	"semestral":  Semiannual,
	"semiannual": Semiannual,
	"anual":      Annual,
	"annual":     Annual,
}

func ParseRecurrence(s string) (Recurrence, error) {
	r, ok := recurrenceAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", httperr.Validationf("invalid_recurrence", "Recorrência inválida: %q.", s)
	}
	return r, nil
}

func (r Recurrence) Months() int {
	switch r {
	case Quarterly:
		return 3
	case Semiannual:
		return 6
	case Annual:
		return 12
	default:
		return 1
	}
}

// EndDate is start plus the period's month offset.
func (r Recurrence) EndDate(start time.Time) time.Time {
	return AddMonths(start, r.Months())
}

// AddMonths moves date n calendar months, keeping the day of month when the
// target month has it and clamping to its last day otherwise
// (Jan 31 + 1 month = Feb 28/29, never Mar 3).
func AddMonths(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, date.Location())
}

// Slot is one expanded occurrence of a recurring contract.
type Slot struct {
	Date time.Time
	Interval
}

type ExpandInput struct {
	Start     time.Time
	Weekdays  WeekdaySet
	Duration  time.Duration
	TimeOfDay Clock
	Period    Recurrence
}

// Expand walks [Start, Period.EndDate(Start)] inclusive and emits one slot
// per matching weekday. Quota is the caller's concern.
func Expand(in ExpandInput) []Slot {
	return ExpandRange(in.Start, in.Period.EndDate(DateOf(in.Start)), in.Weekdays, in.TimeOfDay, in.Duration)
}

func ExpandRange(from, to time.Time, weekdays WeekdaySet, at Clock, d time.Duration) []Slot {
	slots := []Slot{}
	if weekdays.Empty() || d <= 0 {
		return slots
	}

	last := dateKey(to)
	for day := DateOf(from); dateKey(day) <= last; day = day.AddDate(0, 0, 1) {
		if !weekdays.Has(day.Weekday()) {
			continue
		}
		slots = append(slots, Slot{
			Date:     day,
			Interval: NewInterval(at.On(day), d),
		})
	}
	return slots
}

// Candidates turns expanded slots into placements for one professional.
func Candidates(professionalID uint, slots []Slot) []Candidate {
	out := make([]Candidate, 0, len(slots))
	for _, s := range slots {
		out = append(out, Candidate{ProfessionalID: professionalID, Interval: s.Interval})
	}
	return out
}
