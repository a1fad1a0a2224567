package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stekloline/analytics-api/internal/domain"
)

// ExportSnapshotJobName is the name of the nightly export snapshot job
const ExportSnapshotJobName = "export_snapshot"

// DefaultSnapshotTimeout bounds one full snapshot run across all tenants
const DefaultSnapshotTimeout = 15 * time.Minute

// TenantLister yields the tenants that have analytics configured.
type TenantLister interface {
	ListCompanyIDs(ctx context.Context) ([]uuid.UUID, error)
}

// ExportBuilder builds the flat export for one tenant.
type ExportBuilder interface {
	GetExport(ctx context.Context, req *domain.ReportRequest) (*domain.ExportDTO, error)
}

// ExportArchiver renders and stores an export snapshot.
type ExportArchiver interface {
	Archive(ctx context.Context, companyID uuid.UUID, export *domain.ExportDTO) (string, error)
}

// ExportSnapshotJob archives a CSV snapshot of every tenant's orders so
// historical exports survive later edits to the underlying projects.
type ExportSnapshotJob struct {
	tenants  TenantLister
	builder  ExportBuilder
	archiver ExportArchiver
	logger   *zap.Logger
	timeout  time.Duration
}

// NewExportSnapshotJob creates the snapshot job. A zero timeout falls back
// to DefaultSnapshotTimeout.
func NewExportSnapshotJob(tenants TenantLister, builder ExportBuilder, archiver ExportArchiver, logger *zap.Logger, timeout time.Duration) *ExportSnapshotJob {
	if timeout <= 0 {
		timeout = DefaultSnapshotTimeout
	}
	return &ExportSnapshotJob{
		tenants:  tenants,
		builder:  builder,
		archiver: archiver,
		logger:   logger,
		timeout:  timeout,
	}
}

// Run archives one snapshot per tenant. A failing tenant is logged and
// skipped so the rest of the run still completes.
func (j *ExportSnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	companyIDs, err := j.tenants.ListCompanyIDs(ctx)
	if err != nil {
		j.logger.Error("export snapshot: failed to list tenants", zap.Error(err))
		return
	}

	archived, failed := 0, 0
	for _, companyID := range companyIDs {
		export, err := j.builder.GetExport(ctx, &domain.ReportRequest{
			CompanyID:  companyID.String(),
			ReportType: "snapshot",
		})
		if err != nil {
			j.logger.Error("export snapshot: failed to build export",
				zap.String("company_id", companyID.String()),
				zap.Error(err))
			failed++
			continue
		}
		if _, err := j.archiver.Archive(ctx, companyID, export); err != nil {
			j.logger.Error("export snapshot: failed to archive export",
				zap.String("company_id", companyID.String()),
				zap.Error(err))
			failed++
			continue
		}
		archived++
	}

	j.logger.Info("export snapshot run finished",
		zap.Int("tenants", len(companyIDs)),
		zap.Int("archived", archived),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(start)))
}

// Register adds the snapshot job to the scheduler under its cron expression.
func (j *ExportSnapshotJob) Register(scheduler *Scheduler, cronExpr string) error {
	return scheduler.AddJob(ExportSnapshotJobName, cronExpr, j.Run)
}
