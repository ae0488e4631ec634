package scheduling

import (
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// BlockOut is a closed period: every day of [From, To] whose weekday is in
// Weekdays (all days when empty), between Start and End.
// A nil ProfessionalID applies to every professional.
type BlockOut struct {
	ID             uint
	ProfessionalID *uint
	From           time.Time
	To             time.Time
	Weekdays       WeekdaySet
	Start          Clock
	End            Clock
	Reason         string
}

func BlockOutFromModel(m models.BlockOut, loc *time.Location) (BlockOut, error) {
	start, err := ParseClock(m.StartTime)
	if err != nil {
		return BlockOut{}, err
	}
	end, err := ParseClock(m.EndTime)
	if err != nil {
		return BlockOut{}, err
	}
	return BlockOut{
		ID:             m.ID,
		ProfessionalID: m.ProfessionalID,
		From:           CivilDate(m.DateFrom, loc),
		To:             CivilDate(m.DateTo, loc),
		Weekdays:       WeekdaySet(m.WeekdayMask),
		Start:          start,
		End:            end,
		Reason:         m.Reason,
	}, nil
}

// BlockOutsFromModels skips rows whose times do not parse; those were
// never valid inputs and must not block the whole calendar.
func BlockOutsFromModels(rows []models.BlockOut, loc *time.Location) []BlockOut {
	out := make([]BlockOut, 0, len(rows))
	for _, r := range rows {
		b, err := BlockOutFromModel(r, loc)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (b BlockOut) AppliesTo(professionalID uint) bool {
	return b.ProfessionalID == nil || *b.ProfessionalID == professionalID
}

func (b BlockOut) CoversDate(day time.Time) bool {
	k := dateKey(day)
	if k < dateKey(b.From) || k > dateKey(b.To) {
		return false
	}
	return b.Weekdays.Empty() || b.Weekdays.Has(day.Weekday())
}

// Blocks reports whether iv, for the given professional, touches any
// closed window of this block-out.
func (b BlockOut) Blocks(professionalID uint, iv Interval) bool {
	if !b.AppliesTo(professionalID) || !iv.Valid() {
		return false
	}

	for day := DateOf(iv.Start); day.Before(iv.End); day = day.AddDate(0, 0, 1) {
		if !b.CoversDate(day) {
			continue
		}
		closed := Interval{Start: b.Start.On(day), End: b.End.On(day)}
		if closed.Overlaps(iv) {
			return true
		}
	}
	return false
}

func blockedBy(professionalID uint, iv Interval, blockouts []BlockOut) bool {
	for _, b := range blockouts {
		if b.Blocks(professionalID, iv) {
			return true
		}
	}
	return false
}

func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
