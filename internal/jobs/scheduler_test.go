package jobs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stekloline/analytics-api/internal/jobs"
)

func TestSchedulerAddJob(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("export_snapshot", "0 0 3 * * *", func() {}))

	err := s.AddJob("export_snapshot", "0 0 4 * * *", func() {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSchedulerAddJobRejectsBadExpression(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	// Five fields is the classic crontab format; this scheduler expects a
	// leading seconds field.
	err := s.AddJob("export_snapshot", "0 3 * * *", func() {})
	require.Error(t, err)
}
