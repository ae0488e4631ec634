package scheduling

import (
	"context"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/httperr"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type AgendaPeriodInput struct {
	DateFrom       string
	DateTo         string
	ProfessionalID *uint
}

type AgendaPeriod struct {
	Lessons   []models.Lesson
	BlockOuts []models.BlockOut
}

type ListAgendaPeriod struct {
	repo domain.Repository
	cal  Calendar
}

func NewListAgendaPeriod(repo domain.Repository, cal Calendar) *ListAgendaPeriod {
	return &ListAgendaPeriod{repo: repo, cal: cal}
}

func (uc *ListAgendaPeriod) Execute(
	ctx context.Context,
	in AgendaPeriodInput,
) (*AgendaPeriod, error) {

	from, err := uc.cal.parseDate(in.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := uc.cal.parseDate(in.DateTo)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, httperr.Validation("invalid_period", "data_fim deve ser maior ou igual a data_inicio.")
	}

	lessons, err := uc.repo.ListLessonsForPeriod(ctx, in.ProfessionalID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	bos, err := uc.repo.ListBlockOuts(ctx, in.ProfessionalID, from, to)
	if err != nil {
		return nil, err
	}

	if lessons == nil {
		lessons = []models.Lesson{}
	}
	if bos == nil {
		bos = []models.BlockOut{}
	}

	return &AgendaPeriod{Lessons: lessons, BlockOuts: bos}, nil
}
