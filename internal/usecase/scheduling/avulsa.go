package scheduling

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// ======================================================
// AVAILABILITY
// ======================================================

type AvailabilityInput struct {
	Date            string
	ProfessionalID  uint
	DurationMinutes int
}

type GetAvulsaAvailability struct {
	repo domain.Repository
	cal  Calendar
}

func NewGetAvulsaAvailability(repo domain.Repository, cal Calendar) *GetAvulsaAvailability {
	return &GetAvulsaAvailability{repo: repo, cal: cal}
}

// Execute is a pure read. An unknown professional has no free slots.
func (uc *GetAvulsaAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]time.Time, error) {

	date, err := uc.cal.parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetProfessional(ctx, in.ProfessionalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []time.Time{}, nil
		}
		return nil, err
	}

	snap, err := loadSnapshot(ctx, uc.repo, uc.cal.Loc, in.ProfessionalID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	resolver := domain.NewResolver(uc.cal.Window)
	return resolver.Resolve(domain.AvailabilityInput{
		ProfessionalID: in.ProfessionalID,
		Date:           date,
		Duration:       time.Duration(in.DurationMinutes) * time.Minute,
	}, snap.lessons, snap.blockouts), nil
}

// ======================================================
// CREATE
// ======================================================

type CreateAvulsaInput struct {
	StudentID       uint
	ProfessionalID  uint
	UnitID          *uint
	Date            string
	Time            string
	DurationMinutes int
	Price           float64

	UserID *uint
}

type CreateAvulsaLesson struct {
	repo  domain.Repository
	audit Auditor
	cal   Calendar
	log   *zap.Logger
}

func NewCreateAvulsaLesson(repo domain.Repository, audit Auditor, cal Calendar, log *zap.Logger) *CreateAvulsaLesson {
	return &CreateAvulsaLesson{repo: repo, audit: audit, cal: cal, log: log}
}

func (uc *CreateAvulsaLesson) Execute(
	ctx context.Context,
	in CreateAvulsaInput,
) (*models.Lesson, error) {

	if _, err := uc.repo.GetStudent(ctx, in.StudentID); err != nil {
		return nil, errStudentNotFound(err)
	}

	start, err := uc.cal.parseStart(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	candidate := domain.Candidate{
		ProfessionalID: in.ProfessionalID,
		Interval:       domain.NewInterval(start, durationOf(in.DurationMinutes)),
	}
	guard := domain.NewGuard(uc.cal.Window)

	lesson := &models.Lesson{
		StudentID:      &in.StudentID,
		ProfessionalID: in.ProfessionalID,
		UnitID:         in.UnitID,
		StartTime:      candidate.Start,
		EndTime:        candidate.End,
		Status:         string(domain.InitialStatus()),
		Price:          in.Price,
	}

	err = uc.repo.WithCalendarLock(ctx, []uint{in.ProfessionalID}, func(tx domain.Repository) error {
		day := domain.DateOf(start)
		snap, err := loadSnapshot(ctx, tx, uc.cal.Loc, in.ProfessionalID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return err
		}

		if reason, ok := guard.Check(candidate, snap.lessons, snap.blockouts, 0); !ok {
			return reason.Err()
		}

		batch := []models.Lesson{*lesson}
		if err := tx.CreateLessons(ctx, batch); err != nil {
			return err
		}
		*lesson = batch[0]
		return nil
	})
	if err != nil {
		return nil, errProfessionalNotFound(err)
	}

	uc.log.Info("ad-hoc lesson created",
		zap.Uint("lesson_id", lesson.ID),
		zap.Uint("professional_id", lesson.ProfessionalID),
		zap.Time("start", lesson.StartTime),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "lesson_created",
		Entity:   "lesson",
		EntityID: &lesson.ID,
		Metadata: map[string]any{"avulsa": true},
	})

	return lesson, nil
}

// ======================================================
// STUDENT LESSONS
// ======================================================

type ListStudentLessons struct {
	repo domain.Repository
}

func NewListStudentLessons(repo domain.Repository) *ListStudentLessons {
	return &ListStudentLessons{repo: repo}
}

// Execute lists most recent first.
func (uc *ListStudentLessons) Execute(ctx context.Context, studentID uint) ([]models.Lesson, error) {
	if _, err := uc.repo.GetStudent(ctx, studentID); err != nil {
		return nil, errStudentNotFound(err)
	}

	lessons, err := uc.repo.ListLessonsForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}
	return lessons, nil
}
