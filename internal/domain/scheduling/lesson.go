package scheduling

import (
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ChangeStatus(l *models.Lesson, target Status) error {
	if err := CanTransition(Status(l.Status), target); err != nil {
		return err
	}
	l.Status = string(target)
	return nil
}

// Reschedule moves the lesson keeping its identity, student, contract and
// duration. Any status goes back to scheduled.
func Reschedule(l *models.Lesson, start time.Time, professionalID uint, now time.Time) {
	d := l.EndTime.Sub(l.StartTime)
	l.StartTime = start
	l.EndTime = start.Add(d)
	l.ProfessionalID = professionalID
	l.Status = string(StatusScheduled)
	l.RescheduledAt = &now
}

func LessonInterval(l models.Lesson) Interval {
	return Interval{Start: l.StartTime, End: l.EndTime}
}
