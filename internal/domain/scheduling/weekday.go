package scheduling

import (
	"strings"
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/httperr"
)

// WeekdaySet is a bitmask indexed by time.Weekday.
type WeekdaySet uint8

// Display order starts on Monday.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var weekdayTokens = map[time.Weekday]string{
	time.Monday:    "Seg",
	time.Tuesday:   "Ter",
	time.Wednesday: "Qua",
	time.Thursday:  "Qui",
	time.Friday:    "Sex",
	time.Saturday:  "Sab",
	time.Sunday:    "Dom",
}

var tokenWeekdays = map[string]time.Weekday{
	"seg": time.Monday,
	"ter": time.Tuesday,
	"qua": time.Wednesday,
	"qui": time.Thursday,
	"sex": time.Friday,
	"sab": time.Saturday,
	"sáb": time.Saturday,
	"dom": time.Sunday,
}

func WeekdaysOf(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// ParseWeekday accepts the Portuguese abbreviation, case-insensitive,
// looking only at the first three letters ("Segunda" == "Seg").
func ParseWeekday(token string) (time.Weekday, bool) {
	r := []rune(strings.ToLower(strings.TrimSpace(token)))
	if len(r) > 3 {
		r = r[:3]
	}
	d, ok := tokenWeekdays[string(r)]
	return d, ok
}

func ParseWeekdays(tokens []string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, t := range tokens {
		d, ok := ParseWeekday(t)
		if !ok {
			return 0, httperr.Validationf("invalid_weekday", "Dia da semana inválido: %q.", t)
		}
		s = s.With(d)
	}
	return s, nil
}

func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) Empty() bool {
	return s == 0
}

func (s WeekdaySet) Len() int {
	n := 0
	for _, d := range weekdayOrder {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Tokens lists the set Monday-first ("Seg", "Qua", ...).
func (s WeekdaySet) Tokens() []string {
	out := make([]string, 0, s.Len())
	for _, d := range weekdayOrder {
		if s.Has(d) {
			out = append(out, weekdayTokens[d])
		}
	}
	return out
}
