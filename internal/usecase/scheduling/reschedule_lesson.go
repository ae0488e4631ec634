package scheduling

import (
	"context"

	"go.uber.org/zap"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type RescheduleInput struct {
	StudentID      uint
	LessonID       uint
	Date           string
	Time           string
	ProfessionalID *uint

	UserID *uint
}

type RescheduleLesson struct {
	repo  domain.Repository
	audit Auditor
	cal   Calendar
	log   *zap.Logger
}

func NewRescheduleLesson(repo domain.Repository, audit Auditor, cal Calendar, log *zap.Logger) *RescheduleLesson {
	return &RescheduleLesson{repo: repo, audit: audit, cal: cal, log: log}
}

// Execute moves the lesson in place: id, student, contract and duration
// survive, status returns to scheduled.
func (uc *RescheduleLesson) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Lesson, error) {

	start, err := uc.cal.parseStart(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	lesson, err := uc.repo.GetLessonForStudent(ctx, in.LessonID, in.StudentID)
	if err != nil {
		return nil, errLessonNotFound(err)
	}

	professionalID := lesson.ProfessionalID
	if in.ProfessionalID != nil {
		professionalID = *in.ProfessionalID
	}

	guard := domain.NewGuard(uc.cal.Window)
	var before models.Lesson

	err = uc.repo.WithCalendarLock(ctx, []uint{professionalID}, func(tx domain.Repository) error {
		current, err := tx.GetLessonForStudent(ctx, in.LessonID, in.StudentID)
		if err != nil {
			return errLessonNotFound(err)
		}
		before = *current

		candidate := domain.Candidate{
			ProfessionalID: professionalID,
			Interval:       domain.NewInterval(start, current.EndTime.Sub(current.StartTime)),
		}

		day := domain.DateOf(start)
		snap, err := loadSnapshot(ctx, tx, uc.cal.Loc, professionalID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return err
		}

		if reason, ok := guard.Check(candidate, snap.lessons, snap.blockouts, current.ID); !ok {
			return reason.Err()
		}

		domain.Reschedule(current, start, professionalID, uc.cal.Now().In(uc.cal.Loc))
		if err := tx.UpdateLesson(ctx, current); err != nil {
			return err
		}
		lesson = current
		return nil
	})
	if err != nil {
		return nil, errProfessionalNotFound(err)
	}

	uc.log.Info("lesson rescheduled",
		zap.Uint("lesson_id", lesson.ID),
		zap.Time("from", before.StartTime),
		zap.Time("to", lesson.StartTime),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "lesson_rescheduled",
		Entity:   "lesson",
		EntityID: &lesson.ID,
		Metadata: map[string]any{
			"de": map[string]any{
				"inicio":       before.StartTime,
				"professor_id": before.ProfessionalID,
				"status":       before.Status,
			},
			"para": map[string]any{
				"inicio":       lesson.StartTime,
				"professor_id": lesson.ProfessionalID,
			},
		},
	})

	return lesson, nil
}
