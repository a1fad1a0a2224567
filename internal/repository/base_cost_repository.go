package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stekloline/analytics-api/internal/domain"
)

type BaseCostRepository struct {
	db *gorm.DB
}

func NewBaseCostRepository(db *gorm.DB) *BaseCostRepository {
	return &BaseCostRepository{db: db}
}

func (r *BaseCostRepository) Create(ctx context.Context, baseCost *domain.BaseCost) error {
	return r.db.WithContext(ctx).Create(baseCost).Error
}

// ListByCompany returns the tenant's base-cost catalog ordered by creation
// time. The margin calculator picks the first matching entry, so the order
// must be stable across reads.
func (r *BaseCostRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.BaseCost, error) {
	var baseCosts []domain.BaseCost
	query := r.db.WithContext(ctx).Model(&domain.BaseCost{})
	query = ScopeToCompany(query, companyID)
	if err := query.Order("created_at ASC").Find(&baseCosts).Error; err != nil {
		return nil, err
	}
	return baseCosts, nil
}
