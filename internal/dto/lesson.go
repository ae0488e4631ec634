package dto

import (
	"time"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type LessonDTO struct {
	ID             uint       `json:"id"`
	StudentID      *uint      `json:"aluno_id"`
	StudentName    string     `json:"aluno_nome,omitempty"`
	ContractID     *uint      `json:"contrato_id"`
	ProfessionalID uint       `json:"professor_id"`
	UnitID         *uint      `json:"unidade_id"`
	Date           string     `json:"data"`
	StartTime      string     `json:"hora_inicio"`
	EndTime        string     `json:"hora_fim"`
	Start          time.Time  `json:"inicio"`
	End            time.Time  `json:"fim"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label"`
	Price          float64    `json:"valor"`
	RescheduledAt  *time.Time `json:"reagendada_em,omitempty"`
}

func NewLessonDTO(l models.Lesson, loc *time.Location) LessonDTO {
	start := l.StartTime.In(loc)
	end := l.EndTime.In(loc)

	out := LessonDTO{
		ID:             l.ID,
		StudentID:      l.StudentID,
		ContractID:     l.ContractID,
		ProfessionalID: l.ProfessionalID,
		UnitID:         l.UnitID,
		Date:           start.Format("2006-01-02"),
		StartTime:      start.Format("15:04"),
		EndTime:        end.Format("15:04"),
		Start:          start,
		End:            end,
		Status:         l.Status,
		StatusLabel:    domain.Status(l.Status).Token(),
		Price:          l.Price,
		RescheduledAt:  l.RescheduledAt,
	}
	if l.Student != nil {
		out.StudentName = l.Student.Name
	}
	return out
}

func NewLessonDTOs(lessons []models.Lesson, loc *time.Location) []LessonDTO {
	out := make([]LessonDTO, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, NewLessonDTO(l, loc))
	}
	return out
}
