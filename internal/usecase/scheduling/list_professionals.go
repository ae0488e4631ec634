package scheduling

import (
	"context"

	domain "github.com/Jeff1984Sor/app-beach/internal/domain/scheduling"
	"github.com/Jeff1984Sor/app-beach/internal/models"
)

type ListProfessionals struct {
	repo domain.Repository
}

func NewListProfessionals(repo domain.Repository) *ListProfessionals {
	return &ListProfessionals{repo: repo}
}

func (uc *ListProfessionals) Execute(ctx context.Context) ([]models.Professional, error) {
	pros, err := uc.repo.ListProfessionals(ctx)
	if err != nil {
		return nil, err
	}
	if pros == nil {
		pros = []models.Professional{}
	}
	return pros, nil
}
