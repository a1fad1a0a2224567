package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stekloline/analytics-api/internal/domain"
	"github.com/stekloline/analytics-api/internal/jobs"
)

type fakeTenantLister struct {
	ids []uuid.UUID
	err error
}

func (f *fakeTenantLister) ListCompanyIDs(ctx context.Context) ([]uuid.UUID, error) {
	return f.ids, f.err
}

type fakeExportBuilder struct {
	failFor  map[uuid.UUID]bool
	requests []*domain.ReportRequest
}

func (f *fakeExportBuilder) GetExport(ctx context.Context, req *domain.ReportRequest) (*domain.ExportDTO, error) {
	f.requests = append(f.requests, req)
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if f.failFor[companyID] {
		return nil, errors.New("boom")
	}
	return &domain.ExportDTO{ReportType: req.ReportType, GeneratedAt: time.Now().UTC()}, nil
}

type fakeArchiver struct {
	archived []uuid.UUID
	err      error
}

func (f *fakeArchiver) Archive(ctx context.Context, companyID uuid.UUID, export *domain.ExportDTO) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.archived = append(f.archived, companyID)
	return "exports/" + companyID.String() + "/snapshot.csv", nil
}

func TestExportSnapshotJob_ArchivesEveryTenant(t *testing.T) {
	tenants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	builder := &fakeExportBuilder{}
	archiver := &fakeArchiver{}

	job := jobs.NewExportSnapshotJob(&fakeTenantLister{ids: tenants}, builder, archiver, zap.NewNop(), 0)
	job.Run()

	assert.Equal(t, tenants, archiver.archived)
	require.Len(t, builder.requests, 3)
	for _, req := range builder.requests {
		assert.Equal(t, "snapshot", req.ReportType)
	}
}

func TestExportSnapshotJob_SkipsFailingTenant(t *testing.T) {
	healthy, broken := uuid.New(), uuid.New()
	builder := &fakeExportBuilder{failFor: map[uuid.UUID]bool{broken: true}}
	archiver := &fakeArchiver{}

	job := jobs.NewExportSnapshotJob(&fakeTenantLister{ids: []uuid.UUID{broken, healthy}}, builder, archiver, zap.NewNop(), 0)
	job.Run()

	// The failing tenant is skipped, the run still archives the rest.
	assert.Equal(t, []uuid.UUID{healthy}, archiver.archived)
}

func TestExportSnapshotJob_ListFailureAbortsRun(t *testing.T) {
	builder := &fakeExportBuilder{}
	archiver := &fakeArchiver{}

	job := jobs.NewExportSnapshotJob(&fakeTenantLister{err: errors.New("db down")}, builder, archiver, zap.NewNop(), time.Minute)
	job.Run()

	assert.Empty(t, builder.requests)
	assert.Empty(t, archiver.archived)
}
