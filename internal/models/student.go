package models

import "time"

// Aluno. Phone doubles as the WhatsApp number for reminders.
type Student struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:120;not null" json:"nome"`
	Phone  string `gorm:"size:20" json:"telefone"`
	Email  string `gorm:"size:120" json:"email"`
	Status string `gorm:"size:20;default:'ativo'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
