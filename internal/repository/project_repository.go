package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stekloline/analytics-api/internal/domain"
)

// ProjectFilters narrows a tenant's project snapshot. Date bounds apply to
// the creation timestamp and are both inclusive; EndDate is treated as a
// whole calendar day.
type ProjectFilters struct {
	StartDate     *time.Time
	EndDate       *time.Time
	Configuration *domain.ConfigurationKind
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	query := r.db.WithContext(ctx).Where("id = ?", id)
	query = ScopeToCompany(query, companyID)
	if err := query.First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByCompany loads the tenant's project snapshot for aggregation, ordered
// by creation time so downstream rankings resolve ties deterministically.
func (r *ProjectRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, filters *ProjectFilters) ([]domain.Project, error) {
	var projects []domain.Project

	query := r.db.WithContext(ctx).Model(&domain.Project{})
	query = ScopeToCompany(query, companyID)

	if filters != nil {
		if filters.StartDate != nil {
			query = query.Where("created_at >= ?", *filters.StartDate)
		}
		if filters.EndDate != nil {
			// Inclusive upper bound: anything created during that day counts.
			query = query.Where("created_at < ?", filters.EndDate.AddDate(0, 0, 1))
		}
		if filters.Configuration != nil {
			query = query.Where("data_configuration = ?", *filters.Configuration)
		}
	}

	if err := query.Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Project{})
	query = ScopeToCompany(query, companyID)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
