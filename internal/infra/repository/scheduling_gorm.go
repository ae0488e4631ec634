package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return err
}

// --------------------------------------------------
// Professionals
// --------------------------------------------------

func (r *SchedulingGormRepository) ListProfessionals(
	ctx context.Context,
) ([]models.Professional, error) {

	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Joins("User").
		Where(`"User".active = ?`, true).
		Order(`"User".name ASC`).
		Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *SchedulingGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Joins("User").
		First(&p, "professionals.id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// --------------------------------------------------
// Students / Plans
// --------------------------------------------------

func (r *SchedulingGormRepository) GetStudent(
	ctx context.Context,
	id uint,
) (*models.Student, error) {

	var s models.Student
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *SchedulingGormRepository) GetPlan(
	ctx context.Context,
	id uint,
) (*models.Plan, error) {

	var p models.Plan
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// --------------------------------------------------
// Contracts
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateContract(
	ctx context.Context,
	c *models.Contract,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *SchedulingGormRepository) UpdateContract(
	ctx context.Context,
	c *models.Contract,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error
}

func (r *SchedulingGormRepository) GetContractForStudent(
	ctx context.Context,
	contractID uint,
	studentID uint,
) (*models.Contract, error) {

	var c models.Contract
	if err := r.db.WithContext(ctx).
		Where("id = ? AND student_id = ?", contractID, studentID).
		First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *SchedulingGormRepository) ListContractsForStudent(
	ctx context.Context,
	studentID uint,
) ([]models.Contract, error) {

	var cs []models.Contract
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("start_date DESC, id DESC").
		Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

// --------------------------------------------------
// Lessons
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateLessons(
	ctx context.Context,
	lessons []models.Lesson,
) error {
	if len(lessons) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&lessons).Error
}

func (r *SchedulingGormRepository) GetLessonForStudent(
	ctx context.Context,
	lessonID uint,
	studentID uint,
) (*models.Lesson, error) {

	var l models.Lesson
	if err := r.db.WithContext(ctx).
		Where("id = ? AND student_id = ?", lessonID, studentID).
		First(&l).Error; err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

func (r *SchedulingGormRepository) UpdateLesson(
	ctx context.Context,
	l *models.Lesson,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *SchedulingGormRepository) DeleteScheduledContractLessons(
	ctx context.Context,
	contractID uint,
	from time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("contract_id = ? AND status = ? AND start_time >= ? AND rescheduled_at IS NULL",
			contractID, string(domain.StatusScheduled), from).
		Delete(&models.Lesson{})
	return res.RowsAffected, res.Error
}

func (r *SchedulingGormRepository) ListLessonsForPeriod(
	ctx context.Context,
	professionalID *uint,
	start time.Time,
	end time.Time,
) ([]models.Lesson, error) {

	q := r.db.WithContext(ctx).
		Preload("Student").
		Where("start_time < ? AND end_time > ?", end, start)

	if professionalID != nil {
		q = q.Where("professional_id = ?", *professionalID)
	}

	var lessons []models.Lesson
	if err := q.Order("start_time ASC").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *SchedulingGormRepository) ListLessonsForStudent(
	ctx context.Context,
	studentID uint,
) ([]models.Lesson, error) {

	var lessons []models.Lesson
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("start_time DESC").
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// --------------------------------------------------
// Block-outs
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateBlockOut(
	ctx context.Context,
	b *models.BlockOut,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *SchedulingGormRepository) DeleteBlockOut(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.BlockOut{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SchedulingGormRepository) ListBlockOuts(
	ctx context.Context,
	professionalID *uint,
	from time.Time,
	to time.Time,
) ([]models.BlockOut, error) {

	q := r.db.WithContext(ctx).
		Where("date_from <= ? AND date_to >= ?",
			to.Format("2006-01-02"), from.Format("2006-01-02"))

	if professionalID != nil {
		q = q.Where("professional_id = ? OR professional_id IS NULL", *professionalID)
	}

	var bos []models.BlockOut
	if err := q.Order("date_from ASC, start_time ASC").Find(&bos).Error; err != nil {
		return nil, err
	}
	return bos, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *SchedulingGormRepository) WithCalendarLock(
	ctx context.Context,
	professionalIDs []uint,
	fn func(tx domain.Repository) error,
) error {

	ids := slices.Clone(professionalIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked []models.Professional
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id IN ?", ids).
			Order("id ASC").
			Find(&locked).Error; err != nil {
			return err
		}
		if len(ids) == 0 || len(locked) != len(ids) {
			return notFound(gorm.ErrRecordNotFound)
		}

		return fn(&SchedulingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
