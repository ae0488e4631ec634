package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// ErrNotFound is returned by repositories for missing rows.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Professionals --------
	ListProfessionals(
		ctx context.Context,
	) ([]models.Professional, error)

	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// -------- Students / Plans --------
	GetStudent(
		ctx context.Context,
		id uint,
	) (*models.Student, error)

	GetPlan(
		ctx context.Context,
		id uint,
	) (*models.Plan, error)

	// -------- Contracts --------
	CreateContract(
		ctx context.Context,
		c *models.Contract,
	) error

	UpdateContract(
		ctx context.Context,
		c *models.Contract,
	) error

	GetContractForStudent(
		ctx context.Context,
		contractID uint,
		studentID uint,
	) (*models.Contract, error)

	ListContractsForStudent(
		ctx context.Context,
		studentID uint,
	) ([]models.Contract, error)

	// -------- Lessons --------
	CreateLessons(
		ctx context.Context,
		lessons []models.Lesson,
	) error

	GetLessonForStudent(
		ctx context.Context,
		lessonID uint,
		studentID uint,
	) (*models.Lesson, error)

	UpdateLesson(
		ctx context.Context,
		l *models.Lesson,
	) error

	// DeleteScheduledContractLessons removes the still-scheduled lessons of
	// a contract starting at or after from. Rescheduled lessons are kept.
	DeleteScheduledContractLessons(
		ctx context.Context,
		contractID uint,
		from time.Time,
	) (int64, error)

	// ListLessonsForPeriod returns lessons intersecting [start, end).
	// A nil professionalID lists every professional.
	ListLessonsForPeriod(
		ctx context.Context,
		professionalID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Lesson, error)

	ListLessonsForStudent(
		ctx context.Context,
		studentID uint,
	) ([]models.Lesson, error)

	// -------- Block-outs --------
	CreateBlockOut(
		ctx context.Context,
		b *models.BlockOut,
	) error

	DeleteBlockOut(
		ctx context.Context,
		id uint,
	) error

	// ListBlockOuts returns block-outs whose date range intersects
	// [from, to]. With a professional, global block-outs are included.
	ListBlockOuts(
		ctx context.Context,
		professionalID *uint,
		from time.Time,
		to time.Time,
	) ([]models.BlockOut, error)

	// -------- Transactions --------

	// WithCalendarLock runs fn in a transaction holding the row lock of
	// every listed professional, so placements on one calendar serialize.
	// Locks are taken in id order.
	WithCalendarLock(
		ctx context.Context,
		professionalIDs []uint,
		fn func(tx Repository) error,
	) error
}
