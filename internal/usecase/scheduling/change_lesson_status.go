package scheduling

import (
	"context"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type ChangeStatusInput struct {
	StudentID uint
	LessonID  uint
	Status    string

	UserID *uint
}

type ChangeLessonStatus struct {
	repo  domain.Repository
	audit Auditor
	cal   Calendar
}

func NewChangeLessonStatus(repo domain.Repository, audit Auditor, cal Calendar) *ChangeLessonStatus {
	return &ChangeLessonStatus{repo: repo, audit: audit, cal: cal}
}

func (uc *ChangeLessonStatus) Execute(
	ctx context.Context,
	in ChangeStatusInput,
) (*models.Lesson, error) {

	target, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	lesson, err := uc.repo.GetLessonForStudent(ctx, in.LessonID, in.StudentID)
	if err != nil {
		return nil, errLessonNotFound(err)
	}

	from := domain.Status(lesson.Status)
	if err := domain.CanTransition(from, target); err != nil {
		return nil, err
	}
	if from == target {
		return lesson, nil
	}

	// leaving cancelled puts the lesson back on the calendar, so the slot
	// must still be free. Operating hours are not re-checked on reset.
	guard := domain.NewGuard(domain.OperatingWindow{Open: 0, Close: 24 * 60})

	err = uc.repo.WithCalendarLock(ctx, []uint{lesson.ProfessionalID}, func(tx domain.Repository) error {
		current, err := tx.GetLessonForStudent(ctx, in.LessonID, in.StudentID)
		if err != nil {
			return errLessonNotFound(err)
		}

		if !domain.Status(current.Status).Blocking() && target.Blocking() {
			iv := domain.LessonInterval(*current).In(uc.cal.Loc)
			day := domain.DateOf(iv.Start)
			snap, err := loadSnapshot(ctx, tx, uc.cal.Loc, current.ProfessionalID, day, day.AddDate(0, 0, 1))
			if err != nil {
				return err
			}

			c := domain.Candidate{ProfessionalID: current.ProfessionalID, Interval: iv}
			if reason, ok := guard.Check(c, snap.lessons, snap.blockouts, current.ID); !ok {
				return reason.Err()
			}
		}

		if err := domain.ChangeStatus(current, target); err != nil {
			return err
		}
		if err := tx.UpdateLesson(ctx, current); err != nil {
			return err
		}
		lesson = current
		return nil
	})
	if err != nil {
		return nil, errProfessionalNotFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "lesson_status_changed",
		Entity:   "lesson",
		EntityID: &lesson.ID,
		Metadata: map[string]any{
			"de":   string(from),
			"para": string(target),
		},
	})

	return lesson, nil
}
