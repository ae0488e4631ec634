package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type LessonSource interface {
	ListLessonsForPeriod(
		ctx context.Context,
		professionalID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Lesson, error)
}

// ReminderJob messages every student with a scheduled lesson tomorrow.
type ReminderJob struct {
	lessons LessonSource
	sender  Sender
	loc     *time.Location
	log     *zap.Logger

	now func() time.Time
}

func NewReminderJob(lessons LessonSource, sender Sender, loc *time.Location, log *zap.Logger) *ReminderJob {
	return &ReminderJob{
		lessons: lessons,
		sender:  sender,
		loc:     loc,
		log:     log,
		now:     time.Now,
	}
}

// Run returns how many reminders were delivered. Individual send failures
// are logged and do not stop the batch.
func (j *ReminderJob) Run(ctx context.Context) (int, error) {
	today := scheduling.DateOf(j.now().In(j.loc))
	start := today.AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 1)

	lessons, err := j.lessons.ListLessonsForPeriod(ctx, nil, start, end)
	if err != nil {
		return 0, fmt.Errorf("reminder: list lessons: %w", err)
	}

	sent := 0
	for _, l := range lessons {
		if scheduling.Status(l.Status) != scheduling.StatusScheduled {
			continue
		}
		if l.Student == nil || l.Student.Phone == "" {
			continue
		}
		if !l.StartTime.Before(end) || l.StartTime.Before(start) {
			continue
		}

		if err := j.sender.Send(ctx, l.Student.Phone, ReminderMessage(l, j.loc)); err != nil {
			j.log.Warn("reminder not delivered",
				zap.Uint("lesson_id", l.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	j.log.Info("lesson reminders sent",
		zap.String("date", start.Format("2006-01-02")),
		zap.Int("sent", sent),
		zap.Int("lessons", len(lessons)),
	)
	return sent, nil
}

func ReminderMessage(l models.Lesson, loc *time.Location) string {
	name := "aluno"
	if l.Student != nil && l.Student.Name != "" {
		name = l.Student.Name
	}
	start := l.StartTime.In(loc)
	return fmt.Sprintf(
		"Olá, %s! Lembrete: sua aula é amanhã (%s) às %s. Até lá!",
		name, start.Format("02/01"), start.Format("15:04"),
	)
}
