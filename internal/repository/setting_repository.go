package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stekloline/analytics-api/internal/domain"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Create(ctx context.Context, setting *domain.Setting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

// GetByCompany returns the tenant's settings record, or
// gorm.ErrRecordNotFound for tenants that never configured analytics.
func (r *SettingRepository) GetByCompany(ctx context.Context, companyID uuid.UUID) (*domain.Setting, error) {
	var setting domain.Setting
	query := r.db.WithContext(ctx)
	query = ScopeToCompany(query, companyID)
	if err := query.First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// ListCompanyIDs returns every tenant that has a settings record. The export
// snapshot job iterates this list.
func (r *SettingRepository) ListCompanyIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&domain.Setting{}).
		Pluck("company_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
