package scheduling

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Jeff1984Sor/app-beach/internal/audit"
	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

// memRepo is an in-memory domain.Repository.
type memRepo struct {
	mu sync.Mutex

	professionals map[uint]models.Professional
	students      map[uint]models.Student
	plans         map[uint]models.Plan
	contracts     map[uint]models.Contract
	lessons       map[uint]models.Lesson
	blockouts     map[uint]models.BlockOut

	nextID          uint
	lockCalls       int
	lockedCalendars [][]uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		professionals: map[uint]models.Professional{},
		students:      map[uint]models.Student{},
		plans:         map[uint]models.Plan{},
		contracts:     map[uint]models.Contract{},
		lessons:       map[uint]models.Lesson{},
		blockouts:     map[uint]models.BlockOut{},
		nextID:        1000,
	}
}

func (r *memRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *memRepo) ListProfessionals(context.Context) ([]models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Professional
	for _, p := range r.professionals {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) GetProfessional(_ context.Context, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.professionals[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memRepo) GetStudent(_ context.Context, id uint) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *memRepo) GetPlan(_ context.Context, id uint) (*models.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memRepo) CreateContract(_ context.Context, c *models.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.id()
	r.contracts[c.ID] = *c
	return nil
}

func (r *memRepo) UpdateContract(_ context.Context, c *models.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts[c.ID] = *c
	return nil
}

func (r *memRepo) GetContractForStudent(_ context.Context, contractID, studentID uint) (*models.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[contractID]
	if !ok || c.StudentID != studentID {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memRepo) ListContractsForStudent(_ context.Context, studentID uint) ([]models.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Contract
	for _, c := range r.contracts {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memRepo) CreateLessons(_ context.Context, lessons []models.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range lessons {
		lessons[i].ID = r.id()
		r.lessons[lessons[i].ID] = lessons[i]
	}
	return nil
}

func (r *memRepo) GetLessonForStudent(_ context.Context, lessonID, studentID uint) (*models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lessons[lessonID]
	if !ok || l.StudentID == nil || *l.StudentID != studentID {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

func (r *memRepo) UpdateLesson(_ context.Context, l *models.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lessons[l.ID] = *l
	return nil
}

func (r *memRepo) DeleteScheduledContractLessons(_ context.Context, contractID uint, from time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, l := range r.lessons {
		if l.ContractID != nil && *l.ContractID == contractID &&
			l.Status == string(domain.StatusScheduled) && l.RescheduledAt == nil &&
			!l.StartTime.Before(from) {
			delete(r.lessons, id)
			n++
		}
	}
	return n, nil
}

func (r *memRepo) ListLessonsForPeriod(_ context.Context, professionalID *uint, start, end time.Time) ([]models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Lesson
	for _, l := range r.lessons {
		if professionalID != nil && l.ProfessionalID != *professionalID {
			continue
		}
		if l.StartTime.Before(end) && l.EndTime.After(start) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *memRepo) ListLessonsForStudent(_ context.Context, studentID uint) ([]models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Lesson
	for _, l := range r.lessons {
		if l.StudentID != nil && *l.StudentID == studentID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (r *memRepo) CreateBlockOut(_ context.Context, b *models.BlockOut) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.id()
	r.blockouts[b.ID] = *b
	return nil
}

func (r *memRepo) DeleteBlockOut(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blockouts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.blockouts, id)
	return nil
}

func (r *memRepo) ListBlockOuts(_ context.Context, professionalID *uint, from, to time.Time) ([]models.BlockOut, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, t := from.Format("2006-01-02"), to.Format("2006-01-02")
	var out []models.BlockOut
	for _, b := range r.blockouts {
		if b.DateFrom.Format("2006-01-02") > t || b.DateTo.Format("2006-01-02") < f {
			continue
		}
		if professionalID != nil && b.ProfessionalID != nil && *b.ProfessionalID != *professionalID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memRepo) WithCalendarLock(ctx context.Context, professionalIDs []uint, fn func(tx domain.Repository) error) error {
	for _, id := range professionalIDs {
		if _, err := r.GetProfessional(ctx, id); err != nil {
			return err
		}
	}
	r.mu.Lock()
	r.lockCalls++
	r.lockedCalendars = append(r.lockedCalendars, professionalIDs)
	r.mu.Unlock()
	return fn(r)
}

var _ domain.Repository = (*memRepo)(nil)

type memAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *memAudit) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *memAudit) last() audit.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.events[len(a.events)-1]
}
