package scheduling

import (
	"fmt"
	"time"
)

const DefaultStep = 30 * time.Minute

// OperatingWindow is the fixed daily range in which lessons may be placed.
type OperatingWindow struct {
	Open  Clock
	Close Clock
	Step  time.Duration
}

func DefaultWindow() OperatingWindow {
	return OperatingWindow{Open: 7 * 60, Close: 21 * 60, Step: DefaultStep}
}

func NewOperatingWindow(openAt, closeAt string, step time.Duration) (OperatingWindow, error) {
	o, err := ParseClock(openAt)
	if err != nil {
		return OperatingWindow{}, err
	}
	c, err := ParseClock(closeAt)
	if err != nil {
		return OperatingWindow{}, err
	}
	if c <= o {
		return OperatingWindow{}, fmt.Errorf("operating window: close %s must be after open %s", c, o)
	}
	if step <= 0 {
		step = DefaultStep
	}
	return OperatingWindow{Open: o, Close: c, Step: step}, nil
}

// Contains reports whether iv starts and ends on the same day inside the window.
func (w OperatingWindow) Contains(iv Interval) bool {
	if !iv.Valid() || !SameDay(iv.Start, iv.End.Add(-time.Nanosecond)) {
		return false
	}
	day := DateOf(iv.Start)
	return !iv.Start.Before(w.Open.On(day)) && !iv.End.After(w.Close.On(day))
}
