package models

import "time"

type Plan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:120;not null" json:"nome"`
	Price       float64 `json:"valor"`
	Recurrence  string  `gorm:"size:20;not null;default:'mensal'" json:"recorrencia"`
	WeeklyQuota int     `gorm:"not null;default:1" json:"qtd_aulas_semanais"`
	Status      string  `gorm:"size:20;default:'ativo'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
