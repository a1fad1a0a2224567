package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stekloline/analytics-api/internal/domain"
	"github.com/stekloline/analytics-api/internal/repository"
	"github.com/stekloline/analytics-api/internal/testutil"
)

func TestProjectRepositoryScopesToCompany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	mine := uuid.New()
	other := uuid.New()
	now := time.Now().UTC()

	testutil.CreateTestProject(t, db, &domain.Project{CompanyID: mine, Customer: "Иванов", Price: 100}, now)
	testutil.CreateTestProject(t, db, &domain.Project{CompanyID: other, Customer: "Чужой", Price: 200}, now)

	projects, err := repo.ListByCompany(ctx, mine, nil)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Иванов", projects[0].Customer)
}

func TestProjectRepositoryDateFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC)
	}
	for i, d := range []int{1, 10, 20} {
		testutil.CreateTestProject(t, db, &domain.Project{
			CompanyID: companyID,
			Customer:  string(rune('a' + i)),
			Price:     float64(d),
		}, day(d))
	}

	start := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	// The end date is inclusive: a project created at noon of the end day
	// still matches.
	projects, err := repo.ListByCompany(ctx, companyID, &repository.ProjectFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.InDelta(t, 10, projects[0].Price, 1e-9)
}

func TestProjectRepositoryConfigurationFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	now := time.Now().UTC()
	testutil.CreateTestProject(t, db, &domain.Project{
		CompanyID: companyID,
		Data:      domain.ProjectData{Configuration: domain.ConfigStationary},
	}, now)
	testutil.CreateTestProject(t, db, &domain.Project{
		CompanyID: companyID,
		Data:      domain.ProjectData{Configuration: domain.ConfigPartition},
	}, now)

	kind := domain.ConfigPartition
	projects, err := repo.ListByCompany(ctx, companyID, &repository.ProjectFilters{Configuration: &kind})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, domain.ConfigPartition, projects[0].Data.Configuration)
}

func TestProjectRepositoryOrdersByCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProjectRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestProject(t, db, &domain.Project{CompanyID: companyID, Customer: "second"}, base.Add(time.Hour))
	testutil.CreateTestProject(t, db, &domain.Project{CompanyID: companyID, Customer: "first"}, base)

	projects, err := repo.ListByCompany(ctx, companyID, nil)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "first", projects[0].Customer)
	assert.Equal(t, "second", projects[1].Customer)
}

func TestStatusRepositoryOrdersBySortOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStatusRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	testutil.CreateTestStatus(t, db, companyID, "Готово", 2, true)
	testutil.CreateTestStatus(t, db, companyID, "Новый", 0, false)
	testutil.CreateTestStatus(t, db, companyID, "В работе", 1, false)
	testutil.CreateTestStatus(t, db, uuid.New(), "Чужой", 0, false)

	statuses, err := repo.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.Equal(t, "Новый", statuses[0].Name)
	assert.Equal(t, "В работе", statuses[1].Name)
	assert.Equal(t, "Готово", statuses[2].Name)
}

func TestSettingRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSettingRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	setting := &domain.Setting{
		CompanyID:         companyID,
		BaseCostMode:      domain.BaseCostModePercentage,
		CompletedStatuses: []string{"Выдан заказ", "Готово"},
	}
	require.NoError(t, repo.Create(ctx, setting))

	loaded, err := repo.GetByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, domain.BaseCostModePercentage, loaded.BaseCostMode)
	assert.Equal(t, []string{"Выдан заказ", "Готово"}, []string(loaded.CompletedStatuses))

	_, err = repo.GetByCompany(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	ids, err := repo.ListCompanyIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{companyID}, ids)
}

func TestBaseCostRepositoryKeepsInsertionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBaseCostRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	first := &domain.BaseCost{CompanyID: companyID, Name: "Базовая стоимость", Value: 10000}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, db.Model(first).UpdateColumn("created_at", time.Now().UTC().Add(-time.Hour)).Error)
	require.NoError(t, repo.Create(ctx, &domain.BaseCost{CompanyID: companyID, Name: "Стационар", Value: 15000}))

	baseCosts, err := repo.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, baseCosts, 2)
	assert.Equal(t, "Базовая стоимость", baseCosts[0].Name)
}
