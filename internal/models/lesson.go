package models

import "time"

// Lesson is one concrete scheduled class (a LessonOccurrence).
type Lesson struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudentID *uint    `json:"aluno_id"`
	Student   *Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ContractID *uint `json:"contrato_id"`

	ProfessionalID uint          `json:"professor_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	UnitID *uint `json:"unidade_id"`
	Unit   *Unit `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartTime time.Time `json:"inicio"`
	EndTime   time.Time `json:"fim"`

	Status string  `gorm:"size:20;default:'scheduled'" json:"status"`
	Price  float64 `json:"valor"`

	RescheduledAt *time.Time `json:"reagendada_em"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
