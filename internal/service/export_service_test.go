package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stekloline/analytics-api/internal/domain"
	"github.com/stekloline/analytics-api/internal/service"
)

func TestExportService_RenderCSV(t *testing.T) {
	svc := service.NewExportService(nil, zap.NewNop())

	id := uuid.New()
	export := &domain.ExportDTO{
		ReportType:  "all",
		GeneratedAt: time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC),
		Total:       1,
		Rows: []domain.ExportRow{
			{
				ID:             id,
				Customer:       "Иванов",
				Configuration:  "stationary",
				Status:         "Новый",
				GlassColor:     "Прозрачный",
				GlassThickness: "10",
				HardwareColor:  "Черный",
				Width:          "2000",
				Height:         "1500",
				Length:         "Не указано",
				CustomColor:    "Нет",
				Price:          12500.5,
				CreatedAt:      "2024-05-01",
			},
		},
	}

	data, err := svc.RenderCSV(export)
	require.NoError(t, err)

	text := string(data)
	require.True(t, strings.HasPrefix(text, "\xEF\xBB\xBF"), "csv must start with a UTF-8 BOM")

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(text, "\xEF\xBB\xBF"), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Заказчик,Конфигурация"))
	assert.Contains(t, lines[1], id.String())
	assert.Contains(t, lines[1], "12500.5")
	assert.Contains(t, lines[1], "Иванов")
}

func TestExportService_ArchivePath(t *testing.T) {
	companyID := uuid.MustParse("b3f7f6de-58b4-4a26-9655-3f0f2c2a1f10")
	export := &domain.ExportDTO{
		ReportType:  "snapshot",
		GeneratedAt: time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC),
	}

	path := service.ArchivePath(companyID, export)
	assert.Equal(t, "exports/b3f7f6de-58b4-4a26-9655-3f0f2c2a1f10/snapshot-2024-05-01.csv", path)

	// Same tenant, type and day always map to the same archive, so a rerun
	// overwrites rather than accumulates.
	assert.Equal(t, path, service.ArchivePath(companyID, export))
}
