package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_MonthlyMonWedFri(t *testing.T) {
	slots := Expand(ExpandInput{
		Start:     day(2026, time.February, 2),
		Weekdays:  WeekdaysOf(time.Monday, time.Wednesday, time.Friday),
		Duration:  time.Hour,
		TimeOfDay: MustClock("18:00"),
		Period:    Monthly,
	})

	require.Len(t, slots, 13)
	assert.Equal(t, at(2026, time.February, 2, 18, 0), slots[0].Start)
	assert.Equal(t, at(2026, time.February, 2, 19, 0), slots[0].End)
	assert.Equal(t, day(2026, time.March, 2), slots[12].Date)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
}

func TestExpand_CountMatchesWeeks(t *testing.T) {
	// Mar 1 2026 (Sunday) + 3 months = Jun 1 2026: 13 full weeks, then Sun and Mon.
	slots := Expand(ExpandInput{
		Start:     day(2026, time.March, 1),
		Weekdays:  WeekdaysOf(time.Tuesday, time.Thursday),
		Duration:  time.Hour,
		TimeOfDay: MustClock("08:00"),
		Period:    Quarterly,
	})
	assert.Len(t, slots, 26)

	for _, s := range slots {
		wd := s.Date.Weekday()
		assert.True(t, wd == time.Tuesday || wd == time.Thursday)
	}
}

func TestExpand_EmptyWeekdays(t *testing.T) {
	slots := Expand(ExpandInput{
		Start:     day(2026, time.February, 2),
		Duration:  time.Hour,
		TimeOfDay: MustClock("08:00"),
		Period:    Annual,
	})
	assert.Empty(t, slots)
}

func TestAddMonths_ClampsDay(t *testing.T) {
	cases := []struct {
		from time.Time
		n    int
		want time.Time
	}{
		{day(2026, time.January, 31), 1, day(2026, time.February, 28)},
		{day(2028, time.January, 31), 1, day(2028, time.February, 29)},
		{day(2026, time.August, 31), 6, day(2027, time.February, 28)},
		{day(2026, time.February, 2), 12, day(2027, time.February, 2)},
		{day(2026, time.November, 30), 3, day(2027, time.February, 28)},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, AddMonths(c.from, c.n), "from %s +%d", c.from.Format("2006-01-02"), c.n)
	}
}

func TestParseRecurrence(t *testing.T) {
	for in, want := range map[string]Recurrence{
		"mensal":     Monthly,
		"Quarterly":  Quarterly,
		" semestral": Semiannual,
		"annual":     Annual,
	} {
		got, err := ParseRecurrence(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseRecurrence("quinzenal")
	assert.Error(t, err)

	assert.Equal(t, 1, Monthly.Months())
	assert.Equal(t, 3, Quarterly.Months())
	assert.Equal(t, 6, Semiannual.Months())
	assert.Equal(t, 12, Annual.Months())
}
