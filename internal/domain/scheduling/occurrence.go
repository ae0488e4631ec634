package scheduling

import (
	"sort"

	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// Occurrence is the engine's view of a persisted lesson.
type Occurrence struct {
	ID             uint
	ProfessionalID uint
	Interval
	Status Status
}

// Candidate is a lesson placement that has not been persisted yet.
type Candidate struct {
	ProfessionalID uint
	Interval
}

func OccurrenceFromLesson(l models.Lesson) Occurrence {
	return Occurrence{
		ID:             l.ID,
		ProfessionalID: l.ProfessionalID,
		Interval:       Interval{Start: l.StartTime, End: l.EndTime},
		Status:         Status(l.Status),
	}
}

func OccurrencesFromLessons(lessons []models.Lesson) []Occurrence {
	out := make([]Occurrence, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, OccurrenceFromLesson(l))
	}
	return out
}

// busyFor returns the blocking occurrences of one professional, sorted by start.
func busyFor(professionalID uint, occ []Occurrence, exclude uint) []Occurrence {
	out := make([]Occurrence, 0, len(occ))
	for _, o := range occ {
		if o.ProfessionalID != professionalID || !o.Status.Blocking() {
			continue
		}
		if exclude != 0 && o.ID == exclude {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
