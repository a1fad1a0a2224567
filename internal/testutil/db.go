// Package testutil provides shared helpers for database-backed tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stekloline/analytics-api/internal/domain"
)

// SetupTestDB opens an isolated in-memory SQLite database with the analytics
// schema migrated. Each call returns a fresh database, so tests never share
// state.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A unique shared-cache DSN keeps one database per test while letting
	// the connection pool see the same schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "failed to open in-memory database")

	require.NoError(t, db.AutoMigrate(
		&domain.Project{},
		&domain.Status{},
		&domain.Setting{},
		&domain.BaseCost{},
	))

	return db
}

// CreateTestStatus inserts a workflow status for the given tenant.
func CreateTestStatus(t *testing.T, db *gorm.DB, companyID uuid.UUID, name string, sortOrder int, completed bool) *domain.Status {
	t.Helper()

	status := &domain.Status{
		CompanyID:               companyID,
		Name:                    name,
		Color:                   "#2196F3",
		SortOrder:               sortOrder,
		IsCompletedForAnalytics: completed,
	}
	require.NoError(t, db.Create(status).Error)
	return status
}

// CreateTestProject inserts a project and backdates its creation timestamp.
func CreateTestProject(t *testing.T, db *gorm.DB, project *domain.Project, createdAt time.Time) *domain.Project {
	t.Helper()

	require.NoError(t, db.Create(project).Error)
	require.NoError(t, db.Model(project).UpdateColumn("created_at", createdAt).Error)
	project.CreatedAt = createdAt
	return project
}
