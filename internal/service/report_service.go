package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stekloline/analytics-api/internal/analytics"
	"github.com/stekloline/analytics-api/internal/domain"
	"github.com/stekloline/analytics-api/internal/repository"
)

const dateLayout = "2006-01-02"

// ReportService assembles tenant analytics reports. Each report reads a
// consistent snapshot of the tenant's records and hands it to the pure
// aggregation core.
type ReportService struct {
	projectRepo  *repository.ProjectRepository
	statusRepo   *repository.StatusRepository
	settingRepo  *repository.SettingRepository
	baseCostRepo *repository.BaseCostRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewReportService(
	projectRepo *repository.ProjectRepository,
	statusRepo *repository.StatusRepository,
	settingRepo *repository.SettingRepository,
	baseCostRepo *repository.BaseCostRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		projectRepo:  projectRepo,
		statusRepo:   statusRepo,
		settingRepo:  settingRepo,
		baseCostRepo: baseCostRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// reportScope is a validated, parsed report request.
type reportScope struct {
	companyID uuid.UUID
	filters   repository.ProjectFilters
	search    string
}

func (s *ReportService) parseRequest(req *domain.ReportRequest) (*reportScope, error) {
	if req == nil || req.CompanyID == "" {
		return nil, ErrMissingCompanyID
	}
	if err := s.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				switch fieldErr.Field() {
				case "CompanyID":
					return nil, ErrInvalidCompanyID
				case "StartDate", "EndDate":
					return nil, ErrInvalidDate
				}
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, ErrInvalidCompanyID
	}

	scope := &reportScope{companyID: companyID, search: req.Search}

	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		scope.filters.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		scope.filters.EndDate = &end
	}
	if scope.filters.StartDate != nil && scope.filters.EndDate != nil &&
		scope.filters.StartDate.After(*scope.filters.EndDate) {
		return nil, ErrInvalidDateRange
	}

	if req.Configuration != "" {
		kind := domain.ConfigurationKind(req.Configuration)
		if !kind.IsValid() {
			return nil, ErrInvalidConfiguration
		}
		scope.filters.Configuration = &kind
	}

	return scope, nil
}

// snapshot is one tenant's full analytics input set.
type snapshot struct {
	projects  []domain.Project
	statuses  []domain.Status
	setting   *domain.Setting
	baseCosts []domain.BaseCost
}

func (s *ReportService) loadSnapshot(ctx context.Context, scope *reportScope) (*snapshot, error) {
	projects, err := s.projectRepo.ListByCompany(ctx, scope.companyID, &scope.filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	statuses, err := s.statusRepo.ListByCompany(ctx, scope.companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load statuses: %w", err)
	}
	setting, err := s.settingRepo.GetByCompany(ctx, scope.companyID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		// Tenants without a settings record still get reports; margin
		// related figures degrade to zero.
		setting = nil
	}
	baseCosts, err := s.baseCostRepo.ListByCompany(ctx, scope.companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load base costs: %w", err)
	}

	return &snapshot{
		projects:  projects,
		statuses:  statuses,
		setting:   setting,
		baseCosts: baseCosts,
	}, nil
}

func (s *ReportService) GetSalesReport(ctx context.Context, req *domain.ReportRequest) (*domain.SalesReportDTO, error) {
	scope, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, scope)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("building sales report",
		zap.String("company_id", scope.companyID.String()),
		zap.Int("projects", len(snap.projects)))

	return analytics.BuildSalesReport(snap.projects, snap.statuses, snap.setting), nil
}

func (s *ReportService) GetConfigurationReport(ctx context.Context, req *domain.ReportRequest) (*domain.ConfigurationReportDTO, error) {
	scope, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListByCompany(ctx, scope.companyID, &scope.filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return analytics.BuildConfigurationReport(projects), nil
}

func (s *ReportService) GetFinancialReport(ctx context.Context, req *domain.ReportRequest) (*domain.FinancialReportDTO, error) {
	scope, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, scope)
	if err != nil {
		return nil, err
	}
	return analytics.BuildFinancialReport(snap.projects, snap.setting, snap.baseCosts), nil
}

func (s *ReportService) GetProductionReport(ctx context.Context, req *domain.ReportRequest) (*domain.ProductionReportDTO, error) {
	scope, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListByCompany(ctx, scope.companyID, &scope.filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	statuses, err := s.statusRepo.ListByCompany(ctx, scope.companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load statuses: %w", err)
	}
	return analytics.BuildProductionReport(projects, statuses), nil
}

func (s *ReportService) GetCustomerReport(ctx context.Context, req *domain.ReportRequest) (*domain.CustomerReportDTO, error) {
	scope, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, scope)
	if err != nil {
		return nil, err
	}
	return analytics.BuildCustomerReport(snap.projects, snap.setting, snap.baseCosts, scope.search), nil
}

func (s *ReportService) GetExport(ctx context.Context, req *domain.ReportRequest) (*domain.ExportDTO, error) {
	scope, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListByCompany(ctx, scope.companyID, &scope.filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return analytics.BuildExport(projects, req.ReportType, time.Now()), nil
}
