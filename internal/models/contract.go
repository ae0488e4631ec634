package models

import "time"

type Contract struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudentID uint     `json:"aluno_id"`
	Student   *Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PlanID uint  `json:"plano_id"`
	Plan   *Plan `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ProfessionalID uint          `json:"professor_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	UnitID *uint `json:"unidade_id"`

	StartDate  time.Time `gorm:"type:date;not null" json:"-"`
	EndDate    time.Time `gorm:"type:date;not null" json:"-"`
	Recurrence string    `gorm:"size:20;not null" json:"recorrencia"`

	WeekdayMask     int     `gorm:"not null" json:"-"`
	StartTime       string  `gorm:"size:5;not null" json:"hora_inicio"`
	DurationMinutes int     `gorm:"not null;default:60" json:"duracao_minutos"`
	Price           float64 `json:"valor"`

	Status string `gorm:"size:20;default:'ativo'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
