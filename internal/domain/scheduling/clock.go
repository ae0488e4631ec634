package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
)

// Clock is a time of day in minutes since midnight.
type Clock int

const minutesPerDay = 24 * 60

func ParseClock(hm string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(hm), ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 2 {
		return 0, httperr.Validationf("invalid_time", "Hora inválida (%q). Use HH:MM.", hm)
	}

	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, httperr.Validationf("invalid_time", "Hora inválida (%q). Use HH:MM.", hm)
	}

	return Clock(h*60 + m), nil
}

func MustClock(hm string) Clock {
	c, err := ParseClock(hm)
	if err != nil {
		panic(err)
	}
	return c
}

func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// On anchors the clock on the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, date.Location())
}

// OnGrid reports whether c falls on a multiple of step.
func (c Clock) OnGrid(step time.Duration) bool {
	s := int(step / time.Minute)
	if s <= 0 {
		return true
	}
	return int(c)%s == 0
}

// DateOf truncates t to midnight of its calendar day in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CivilDate re-anchors a DATE column value (usually UTC midnight) on loc.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
