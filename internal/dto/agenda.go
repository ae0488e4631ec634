package dto

import (
	"time"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type BlockOutDTO struct {
	ID             uint     `json:"id"`
	ProfessionalID *uint    `json:"profissional_id"`
	UnitID         *uint    `json:"unidade_id"`
	DateFrom       string   `json:"data_inicio"`
	DateTo         string   `json:"data_fim"`
	Weekdays       []string `json:"dias_semana"`
	StartTime      string   `json:"hora_inicio"`
	EndTime        string   `json:"hora_fim"`
	Reason         string   `json:"motivo"`
}

func NewBlockOutDTO(b models.BlockOut) BlockOutDTO {
	return BlockOutDTO{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		UnitID:         b.UnitID,
		DateFrom:       b.DateFrom.Format("2006-01-02"),
		DateTo:         b.DateTo.Format("2006-01-02"),
		Weekdays:       domain.WeekdaySet(b.WeekdayMask).Tokens(),
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Reason:         b.Reason,
	}
}

func NewBlockOutDTOs(bos []models.BlockOut) []BlockOutDTO {
	out := make([]BlockOutDTO, 0, len(bos))
	for _, b := range bos {
		out = append(out, NewBlockOutDTO(b))
	}
	return out
}

type AgendaPeriodDTO struct {
	DateFrom  string        `json:"data_inicio"`
	DateTo    string        `json:"data_fim"`
	Lessons   []LessonDTO   `json:"aulas"`
	BlockOuts []BlockOutDTO `json:"bloqueios"`
}

type ProfessionalDTO struct {
	ID         uint    `json:"id"`
	UserID     uint    `json:"usuario_id"`
	Name       string  `json:"nome"`
	Email      string  `json:"email"`
	HourlyRate float64 `json:"valor_hora"`
}

func NewProfessionalDTOs(pros []models.Professional) []ProfessionalDTO {
	out := make([]ProfessionalDTO, 0, len(pros))
	for _, p := range pros {
		d := ProfessionalDTO{ID: p.ID, UserID: p.UserID, HourlyRate: p.HourlyRate}
		if p.User != nil {
			d.Name = p.User.Name
			d.Email = p.User.Email
		}
		out = append(out, d)
	}
	return out
}

type AvailabilityDTO struct {
	Date            string   `json:"data"`
	ProfessionalID  uint     `json:"professor_id"`
	DurationMinutes int      `json:"duracao_minutos"`
	FreeSlots       []string `json:"horarios_livres"`
}

func NewAvailabilityDTO(date string, professionalID uint, minutes int, slots []time.Time) AvailabilityDTO {
	return AvailabilityDTO{
		Date:            date,
		ProfessionalID:  professionalID,
		DurationMinutes: minutes,
		FreeSlots:       domain.FormatSlots(slots),
	}
}
