package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stekloline/analytics-api/internal/domain"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Create(ctx context.Context, status *domain.Status) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// ListByCompany returns the tenant's workflow statuses in their configured
// display order.
func (r *StatusRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Status, error) {
	var statuses []domain.Status
	query := r.db.WithContext(ctx).Model(&domain.Status{})
	query = ScopeToCompany(query, companyID)
	if err := query.Order("sort_order ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}
