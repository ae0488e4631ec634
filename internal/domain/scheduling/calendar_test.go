package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("07:30")
	require.NoError(t, err)
	assert.Equal(t, Clock(450), c)
	assert.Equal(t, "07:30", c.String())
	assert.True(t, c.OnGrid(30*time.Minute))
	assert.False(t, MustClock("07:15").OnGrid(30*time.Minute))

	for _, bad := range []string{"", "7", "24:00", "10:5", "aa:bb"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseWeekdays(t *testing.T) {
	s, err := ParseWeekdays([]string{"Seg", "qua", "SEXTA", "Sáb"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Seg", "Qua", "Sex", "Sab"}, s.Tokens())
	assert.Equal(t, 4, s.Len())

	_, err = ParseWeekdays([]string{"Seg", "Xyz"})
	assert.Error(t, err)
}

func TestOperatingWindow(t *testing.T) {
	_, err := NewOperatingWindow("21:00", "07:00", 0)
	assert.Error(t, err)

	w, err := NewOperatingWindow("08:00", "12:00", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultStep, w.Step)

	assert.True(t, w.Contains(NewInterval(at(2026, time.March, 2, 11, 0), time.Hour)))
	assert.False(t, w.Contains(NewInterval(at(2026, time.March, 2, 11, 30), time.Hour)))
	assert.False(t, w.Contains(NewInterval(at(2026, time.March, 2, 7, 30), time.Hour)))
}

func TestInterval_Overlaps(t *testing.T) {
	a := NewInterval(at(2026, time.March, 2, 10, 0), time.Hour)
	assert.True(t, a.Overlaps(NewInterval(at(2026, time.March, 2, 10, 59), time.Minute)))
	assert.False(t, a.Overlaps(NewInterval(at(2026, time.March, 2, 11, 0), time.Minute)))
	assert.False(t, a.Overlaps(NewInterval(at(2026, time.March, 2, 9, 0), time.Hour)))
}
