package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lunaalencar/juridico-api/internal/models"
)

// CaseRepository defines read-only access to legal cases. Cases are managed
// by the intake screens; billing only needs them for references and display.
type CaseRepository interface {
	FindByID(ctx context.Context, id uint) (*models.LegalCase, error)
	FindRecent(ctx context.Context, limit int) ([]models.LegalCase, error)
}

type caseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{db: db}
}

func (r *caseRepository) FindByID(ctx context.Context, id uint) (*models.LegalCase, error) {
	var legalCase models.LegalCase
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&legalCase, id).Error
	if err != nil {
		return nil, err
	}
	return &legalCase, nil
}

func (r *caseRepository) FindRecent(ctx context.Context, limit int) ([]models.LegalCase, error) {
	var cases []models.LegalCase
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Limit(limit).
		Find(&cases).Error
	return cases, err
}
