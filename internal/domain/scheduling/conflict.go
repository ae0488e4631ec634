package scheduling

import "github.com/Jeff1984Sor/app-beach/internal/httperr"

type Reason string

const (
	ReasonOutsideHours   Reason = "outside_operating_hours"
	ReasonExistingLesson Reason = "overlaps_existing_lesson"
	ReasonBlockOut       Reason = "overlaps_blockout"
)

func (r Reason) Detail() string {
	switch r {
	case ReasonOutsideHours:
		return "Horário fora do funcionamento."
	case ReasonExistingLesson:
		return "Conflito com outra aula do professor."
	case ReasonBlockOut:
		return "Horário bloqueado na agenda."
	default:
		return string(r)
	}
}

// Err converts a rejection reason into the error returned to a single
// placement request.
func (r Reason) Err() error {
	if r == ReasonOutsideHours {
		return httperr.Validation(string(r), r.Detail())
	}
	return httperr.Conflict(string(r), r.Detail())
}

type Rejection struct {
	Candidate Candidate
	Reason    Reason
}

type Placement struct {
	Accepted []Candidate
	Rejected []Rejection
}

// Guard accepts or rejects placements against a snapshot of lessons and
// block-outs.
type Guard struct {
	Window OperatingWindow
}

func NewGuard(w OperatingWindow) Guard {
	return Guard{Window: w}
}

// Check validates one candidate. exclude skips the lesson being moved
// (0 excludes nothing).
func (g Guard) Check(
	c Candidate,
	existing []Occurrence,
	blockouts []BlockOut,
	exclude uint,
) (Reason, bool) {

	if !g.Window.Contains(c.Interval) {
		return ReasonOutsideHours, false
	}

	for _, o := range busyFor(c.ProfessionalID, existing, exclude) {
		if o.Overlaps(c.Interval) {
			return ReasonExistingLesson, false
		}
	}

	if blockedBy(c.ProfessionalID, c.Interval, blockouts) {
		return ReasonBlockOut, false
	}

	return "", true
}

// Place evaluates the whole batch against one snapshot. Accepted
// candidates join the working set, so a batch never double-books itself.
// There is no all-or-nothing: callers persist Accepted and report Rejected.
func (g Guard) Place(
	candidates []Candidate,
	existing []Occurrence,
	blockouts []BlockOut,
) Placement {

	working := make([]Occurrence, 0, len(existing)+len(candidates))
	working = append(working, existing...)

	p := Placement{
		Accepted: []Candidate{},
		Rejected: []Rejection{},
	}

	for _, c := range candidates {
		reason, ok := g.Check(c, working, blockouts, 0)
		if !ok {
			p.Rejected = append(p.Rejected, Rejection{Candidate: c, Reason: reason})
			continue
		}

		p.Accepted = append(p.Accepted, c)
		working = append(working, Occurrence{
			ProfessionalID: c.ProfessionalID,
			Interval:       c.Interval,
			Status:         StatusScheduled,
		})
	}

	return p
}
