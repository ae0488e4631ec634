package dto

import (
	"time"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
	uc "github.com/Jeff1984Sor/app-beach/internal/usecase/scheduling"
)

type ContractDTO struct {
	ID              uint     `json:"id"`
	StudentID       uint     `json:"aluno_id"`
	PlanID          uint     `json:"plano_id"`
	ProfessionalID  uint     `json:"professor_id"`
	UnitID          *uint    `json:"unidade_id"`
	StartDate       string   `json:"data_inicio"`
	EndDate         string   `json:"data_fim"`
	Recurrence      string   `json:"recorrencia"`
	Weekdays        []string `json:"dias_semana"`
	StartTime       string   `json:"hora_inicio"`
	DurationMinutes int      `json:"duracao_minutos"`
	Price           float64  `json:"valor"`
	Status          string   `json:"status"`
}

func NewContractDTO(c models.Contract) ContractDTO {
	return ContractDTO{
		ID:              c.ID,
		StudentID:       c.StudentID,
		PlanID:          c.PlanID,
		ProfessionalID:  c.ProfessionalID,
		UnitID:          c.UnitID,
		StartDate:       c.StartDate.Format("2006-01-02"),
		EndDate:         c.EndDate.Format("2006-01-02"),
		Recurrence:      c.Recurrence,
		Weekdays:        domain.WeekdaySet(c.WeekdayMask).Tokens(),
		StartTime:       c.StartTime,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Status:          c.Status,
	}
}

func NewContractDTOs(cs []models.Contract) []ContractDTO {
	out := make([]ContractDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewContractDTO(c))
	}
	return out
}

type RejectedSlotDTO struct {
	Date      string `json:"data"`
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fim"`
	Reason    string `json:"motivo"`
	Detail    string `json:"detalhe"`
}

type ReservationDTO struct {
	Contract ContractDTO       `json:"contrato"`
	Accepted []LessonDTO       `json:"aceitas"`
	Rejected []RejectedSlotDTO `json:"rejeitadas"`
	Warning  string            `json:"aviso,omitempty"`
}

func NewReservationDTO(r *uc.Reservation, loc *time.Location) ReservationDTO {
	rejected := make([]RejectedSlotDTO, 0, len(r.Rejected))
	for _, s := range r.Rejected {
		start, end := s.Start.In(loc), s.End.In(loc)
		rejected = append(rejected, RejectedSlotDTO{
			Date:      start.Format("2006-01-02"),
			StartTime: start.Format("15:04"),
			EndTime:   end.Format("15:04"),
			Reason:    string(s.Reason),
			Detail:    s.Reason.Detail(),
		})
	}

	return ReservationDTO{
		Contract: NewContractDTO(*r.Contract),
		Accepted: NewLessonDTOs(r.Accepted, loc),
		Rejected: rejected,
		Warning:  r.Warning,
	}
}
