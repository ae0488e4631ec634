package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeff1984Sor/app-beach/internal/models"
)

func TestBlockOut_Blocks(t *testing.T) {
	b := BlockOut{
		ProfessionalID: uintPtr(3),
		From:           day(2026, time.March, 2),
		To:             day(2026, time.March, 13),
		Weekdays:       WeekdaysOf(time.Monday, time.Friday),
		Start:          MustClock("12:00"),
		End:            MustClock("14:00"),
	}

	cases := []struct {
		name  string
		prof  uint
		start time.Time
		want  bool
	}{
		{"monday inside", 3, at(2026, time.March, 2, 13, 0), true},
		{"ends at block start", 3, at(2026, time.March, 2, 11, 0), false},
		{"starts at block end", 3, at(2026, time.March, 2, 14, 0), false},
		{"tuesday filtered out", 3, at(2026, time.March, 3, 12, 0), false},
		{"friday last week", 3, at(2026, time.March, 13, 12, 30), true},
		{"after range", 3, at(2026, time.March, 16, 12, 0), false},
		{"other professional", 4, at(2026, time.March, 2, 12, 0), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, b.Blocks(c.prof, NewInterval(c.start, time.Hour)))
		})
	}
}

func TestBlockOut_GlobalAppliesToEveryone(t *testing.T) {
	b := BlockOut{From: day(2026, time.March, 2), To: day(2026, time.March, 2), Start: MustClock("07:00"), End: MustClock("08:00")}
	assert.True(t, b.AppliesTo(1))
	assert.True(t, b.AppliesTo(99))
	assert.True(t, b.Blocks(99, NewInterval(at(2026, time.March, 2, 7, 30), time.Hour)))
}

func TestBlockOutFromModel(t *testing.T) {
	m := models.BlockOut{
		ID:          5,
		DateFrom:    time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
		WeekdayMask: int(WeekdaysOf(time.Tuesday)),
		StartTime:   "09:00",
		EndTime:     "10:00",
	}

	b, err := BlockOutFromModel(m, saoPaulo)
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.March, 2), b.From)
	assert.True(t, b.Blocks(1, NewInterval(at(2026, time.March, 3, 9, 30), time.Hour)))
	assert.False(t, b.Blocks(1, NewInterval(at(2026, time.March, 2, 9, 30), time.Hour)))

	m.EndTime = "25:00"
	assert.Empty(t, BlockOutsFromModels([]models.BlockOut{m}, saoPaulo))
}

func TestBlockOut_BlocksOnSchoolClock(t *testing.T) {
	b := BlockOut{
		From:  day(2026, time.March, 2),
		To:    day(2026, time.March, 2),
		Start: MustClock("18:00"),
		End:   MustClock("19:00"),
	}

	// 18:00 in São Paulo is 21:00 UTC
	stored := NewInterval(at(2026, time.March, 2, 18, 0).UTC(), time.Hour)

	assert.True(t, b.Blocks(1, stored.In(saoPaulo)))
	assert.True(t, stored.Start.Equal(stored.In(saoPaulo).Start))
	assert.False(t, b.Blocks(1, NewInterval(at(2026, time.March, 2, 15, 0).UTC(), time.Hour).In(saoPaulo)))
}
