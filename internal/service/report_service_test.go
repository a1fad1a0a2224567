package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/stekloline/analytics-api/internal/domain"
	"github.com/stekloline/analytics-api/internal/repository"
	"github.com/stekloline/analytics-api/internal/service"
	"github.com/stekloline/analytics-api/internal/testutil"
)

func newReportService(t *testing.T) (*service.ReportService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	svc := service.NewReportService(
		repository.NewProjectRepository(db),
		repository.NewStatusRepository(db),
		repository.NewSettingRepository(db),
		repository.NewBaseCostRepository(db),
		zap.NewNop(),
	)
	return svc, db
}

func TestReportService_RequestValidation(t *testing.T) {
	svc, _ := newReportService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *domain.ReportRequest
		wantErr error
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: service.ErrMissingCompanyID,
		},
		{
			name:    "empty company id",
			req:     &domain.ReportRequest{},
			wantErr: service.ErrMissingCompanyID,
		},
		{
			name:    "malformed company id",
			req:     &domain.ReportRequest{CompanyID: "not-a-uuid"},
			wantErr: service.ErrInvalidCompanyID,
		},
		{
			name: "malformed start date",
			req: &domain.ReportRequest{
				CompanyID: uuid.NewString(),
				StartDate: "01.05.2024",
			},
			wantErr: service.ErrInvalidDate,
		},
		{
			name: "start after end",
			req: &domain.ReportRequest{
				CompanyID: uuid.NewString(),
				StartDate: "2024-06-01",
				EndDate:   "2024-05-01",
			},
			wantErr: service.ErrInvalidDateRange,
		},
		{
			name: "unknown configuration",
			req: &domain.ReportRequest{
				CompanyID:     uuid.NewString(),
				Configuration: "pergola",
			},
			wantErr: service.ErrInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetSalesReport(ctx, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, service.IsClientError(err))
		})
	}
}

func TestReportService_SalesReport(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	companyID := uuid.New()
	otherCompany := uuid.New()

	newStatus := testutil.CreateTestStatus(t, db, companyID, "Новый", 0, false)
	doneStatus := testutil.CreateTestStatus(t, db, companyID, "Готово", 1, true)

	testutil.CreateTestProject(t, db, &domain.Project{
		CompanyID: companyID,
		Customer:  "Иванов",
		Price:     10000,
		StatusID:  &doneStatus.ID,
		Status:    doneStatus.Name,
		Data:      domain.ProjectData{Configuration: domain.ConfigStationary},
	}, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	testutil.CreateTestProject(t, db, &domain.Project{
		CompanyID: companyID,
		Customer:  "Петров",
		Price:     5000,
		StatusID:  &newStatus.ID,
		Status:    newStatus.Name,
		Data:      domain.ProjectData{Configuration: domain.ConfigStationary},
	}, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	testutil.CreateTestProject(t, db, &domain.Project{
		CompanyID: otherCompany,
		Customer:  "Чужой",
		Price:     99999,
		Data:      domain.ProjectData{Configuration: domain.ConfigUnique},
	}, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	report, err := svc.GetSalesReport(ctx, &domain.ReportRequest{CompanyID: companyID.String()})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalOrders)
	assert.Equal(t, 1, report.CompletedOrders)
	assert.Equal(t, 1, report.InProgressOrders)
	assert.InDelta(t, 15000, report.TotalRevenue, 0.01)
	assert.InDelta(t, 10000, report.CompletedRevenue, 0.01)
	assert.InDelta(t, 5000, report.InProgressRevenue, 0.01)
	assert.InDelta(t, 7500, report.AverageOrderValue, 0.01)
	assert.InDelta(t, 50, report.CompletionRate, 0.01)

	require.Contains(t, report.ConfigurationStats, domain.ConfigStationary)
	assert.Equal(t, 2, report.ConfigurationStats[domain.ConfigStationary].TotalOrders)
	assert.NotContains(t, report.ConfigurationStats, domain.ConfigUnique)

	assert.InDelta(t, 10000, report.DailyRevenue["2024-05-01"], 0.01)
	assert.InDelta(t, 5000, report.DailyRevenue["2024-05-02"], 0.01)
}

func TestReportService_SalesReportDateFilter(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	companyID := uuid.New()
	for day, price := range map[int]float64{1: 1000, 15: 2000, 28: 3000} {
		testutil.CreateTestProject(t, db, &domain.Project{
			CompanyID: companyID,
			Price:     price,
			Data:      domain.ProjectData{Configuration: domain.ConfigPartition},
		}, time.Date(2024, 5, day, 12, 0, 0, 0, time.UTC))
	}

	report, err := svc.GetSalesReport(ctx, &domain.ReportRequest{
		CompanyID: companyID.String(),
		StartDate: "2024-05-10",
		EndDate:   "2024-05-15",
	})
	require.NoError(t, err)

	// The end date is inclusive: the noon order of May 15 is in range.
	assert.Equal(t, 1, report.TotalOrders)
	assert.InDelta(t, 2000, report.TotalRevenue, 0.01)
}

func TestReportService_FinancialReport(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	companyID := uuid.New()
	require.NoError(t, db.Create(&domain.Setting{
		CompanyID:    companyID,
		BaseCostMode: domain.BaseCostModeFixed,
	}).Error)
	require.NoError(t, db.Create(&domain.BaseCost{
		CompanyID: companyID,
		Name:      "Стационарная конструкция",
		Value:     4000,
	}).Error)

	testutil.CreateTestProject(t, db, &domain.Project{
		CompanyID: companyID,
		Price:     10000,
		Data:      domain.ProjectData{Configuration: domain.ConfigStationary},
	}, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	report, err := svc.GetFinancialReport(ctx, &domain.ReportRequest{CompanyID: companyID.String()})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalOrders)
	assert.InDelta(t, 10000, report.TotalRevenue, 0.01)
	assert.InDelta(t, 4000, report.TotalMargin, 0.01)
	assert.InDelta(t, 6000, report.TotalCost, 0.01)
	assert.InDelta(t, 40, report.AverageMarginPercent, 0.01)

	require.Contains(t, report.ByConfiguration, domain.ConfigStationary)
	assert.InDelta(t, 4000, report.ByConfiguration[domain.ConfigStationary].Margin, 0.01)
}

func TestReportService_FinancialReportWithoutSettings(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	companyID := uuid.New()
	testutil.CreateTestProject(t, db, &domain.Project{
		CompanyID: companyID,
		Price:     10000,
		Data:      domain.ProjectData{Configuration: domain.ConfigStationary},
	}, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	// A tenant that never saved a settings record still gets a report;
	// margin figures degrade to zero.
	report, err := svc.GetFinancialReport(ctx, &domain.ReportRequest{CompanyID: companyID.String()})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalOrders)
	assert.InDelta(t, 10000, report.TotalRevenue, 0.01)
	assert.InDelta(t, 0, report.TotalMargin, 0.01)
	assert.InDelta(t, 10000, report.TotalCost, 0.01)
}

func TestReportService_CustomerReportSearch(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	companyID := uuid.New()
	for _, p := range []struct {
		customer string
		price    float64
	}{
		{"ООО Стекло", 10000},
		{"ооо стекло ", 5000},
		{"Иванов", 3000},
	} {
		testutil.CreateTestProject(t, db, &domain.Project{
			CompanyID: companyID,
			Customer:  p.customer,
			Price:     p.price,
			Data:      domain.ProjectData{Configuration: domain.ConfigUnique},
		}, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	}

	report, err := svc.GetCustomerReport(ctx, &domain.ReportRequest{
		CompanyID: companyID.String(),
		Search:    "стекло",
	})
	require.NoError(t, err)

	// "ООО Стекло" and "ооо стекло " are distinct customers but both match
	// the case-insensitive search; "Иванов" does not.
	assert.Equal(t, 2, report.TotalCustomers)
	require.Len(t, report.Customers, 2)
	assert.Equal(t, "ООО Стекло", report.Customers[0].Name)
	assert.InDelta(t, 10000, report.Customers[0].Revenue, 0.01)
}

func TestReportService_Export(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	companyID := uuid.New()
	testutil.CreateTestProject(t, db, &domain.Project{
		CompanyID: companyID,
		Customer:  "Иванов",
		Price:     12500,
		Status:    "Новый",
		Data: domain.ProjectData{
			Configuration: domain.ConfigStationary,
			GlassColor:    "Прозрачный",
			CustomColor:   true,
		},
	}, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	export, err := svc.GetExport(ctx, &domain.ReportRequest{CompanyID: companyID.String()})
	require.NoError(t, err)

	assert.Equal(t, "all", export.ReportType)
	assert.Equal(t, 1, export.Total)
	require.Len(t, export.Rows, 1)

	row := export.Rows[0]
	assert.Equal(t, "Иванов", row.Customer)
	assert.Equal(t, "stationary", row.Configuration)
	assert.Equal(t, "Прозрачный", row.GlassColor)
	assert.Equal(t, "Не указано", row.GlassThickness)
	assert.Equal(t, "Да", row.CustomColor)
	assert.Equal(t, "2024-05-01", row.CreatedAt)
	assert.InDelta(t, 12500, row.Price, 0.01)
}
