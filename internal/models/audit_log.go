package models

import "time"

// AuditLog is append-only. Metadata holds the event payload as JSON text.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   *uint  `json:"usuario_id"`
	Action   string `gorm:"size:80;not null;index" json:"acao"`
	Entity   string `gorm:"size:80;not null" json:"entidade"`
	EntityID *uint  `json:"entidade_id"`
	Metadata string `gorm:"type:text" json:"metadados,omitempty"`

	CreatedAt time.Time `json:"criado_em"`
}
