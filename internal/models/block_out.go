package models

import "time"

// BlockOut closes a date range × time range, optionally filtered by
// weekday, for one professional or (ProfessionalID nil) for everybody.
type BlockOut struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID *uint         `json:"profissional_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UnitID *uint `json:"unidade_id"`

	DateFrom time.Time `gorm:"type:date;not null" json:"-"`
	DateTo   time.Time `gorm:"type:date;not null" json:"-"`

	// 0 means every day of the range.
	WeekdayMask int `gorm:"not null;default:0" json:"-"`

	StartTime string `gorm:"size:5;not null" json:"hora_inicio"`
	EndTime   string `gorm:"size:5;not null" json:"hora_fim"`
	Reason    string `gorm:"size:255" json:"motivo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
