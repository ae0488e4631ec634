package scheduling

import "time"

type AvailabilityInput struct {
	ProfessionalID uint
	Date           time.Time
	Duration       time.Duration
}

// Resolver lists free start times inside the operating window.
type Resolver struct {
	Window OperatingWindow
}

func NewResolver(w OperatingWindow) Resolver {
	return Resolver{Window: w}
}

// Resolve returns, ascending, every step-aligned start for which
// [start, start+duration) fits the window and intersects neither a
// blocking lesson of the professional nor an applicable block-out.
func (r Resolver) Resolve(
	in AvailabilityInput,
	lessons []Occurrence,
	blockouts []BlockOut,
) []time.Time {

	slots := []time.Time{}
	if in.Duration <= 0 {
		return slots
	}

	day := DateOf(in.Date)
	dayStart := r.Window.Open.On(day)
	dayEnd := r.Window.Close.On(day)

	step := r.Window.Step
	if step <= 0 {
		step = DefaultStep
	}

	busy := busyFor(in.ProfessionalID, lessons, 0)
	idx := 0

	for cur := dayStart; !cur.Add(in.Duration).After(dayEnd); cur = cur.Add(step) {
		slot := NewInterval(cur, in.Duration)

		// lessons already finished before this slot never matter again
		for idx < len(busy) && !busy[idx].End.After(slot.Start) {
			idx++
		}

		conflict := false
		for j := idx; j < len(busy) && busy[j].Start.Before(slot.End); j++ {
			if busy[j].Overlaps(slot) {
				conflict = true
				break
			}
		}
		if conflict || blockedBy(in.ProfessionalID, slot, blockouts) {
			continue
		}

		slots = append(slots, cur)
	}

	return slots
}

func FormatSlots(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	return out
}
