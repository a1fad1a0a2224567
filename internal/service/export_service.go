package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stekloline/analytics-api/internal/domain"
	"github.com/stekloline/analytics-api/internal/storage"
)

// csvHeader is the column order of the flat export, matching the frontend
// table the export feeds.
var csvHeader = []string{
	"ID",
	"Заказчик",
	"Конфигурация",
	"Статус",
	"Цвет стекла",
	"Толщина стекла",
	"Цвет фурнитуры",
	"Ширина",
	"Высота",
	"Длина",
	"Нестандартный цвет",
	"Цена",
	"Дата создания",
}

// ExportService renders flat exports as CSV and archives them in blob
// storage for later download.
type ExportService struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewExportService(store storage.Storage, logger *zap.Logger) *ExportService {
	return &ExportService{store: store, logger: logger}
}

// RenderCSV serializes an export payload to UTF-8 CSV with a BOM so
// spreadsheet applications detect the encoding of Cyrillic text.
func (s *ExportService) RenderCSV(export *domain.ExportDTO) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range export.Rows {
		row := &export.Rows[i]
		record := []string{
			row.ID.String(),
			row.Customer,
			row.Configuration,
			row.Status,
			row.GlassColor,
			row.GlassThickness,
			row.HardwareColor,
			row.Width,
			row.Height,
			row.Length,
			row.CustomColor,
			strconv.FormatFloat(row.Price, 'f', -1, 64),
			row.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ArchivePath is the deterministic blob path of a tenant's export snapshot;
// one archive per tenant, type and day.
func ArchivePath(companyID uuid.UUID, export *domain.ExportDTO) string {
	day := export.GeneratedAt.UTC().Format("2006-01-02")
	return fmt.Sprintf("exports/%s/%s-%s.csv", companyID, export.ReportType, day)
}

// Archive renders an export to CSV and stores it, returning the archive
// path.
func (s *ExportService) Archive(ctx context.Context, companyID uuid.UUID, export *domain.ExportDTO) (string, error) {
	data, err := s.RenderCSV(export)
	if err != nil {
		return "", err
	}

	path := ArchivePath(companyID, export)
	size, err := s.store.Save(ctx, path, "text/csv; charset=utf-8", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to archive export: %w", err)
	}

	s.logger.Info("export archived",
		zap.String("company_id", companyID.String()),
		zap.String("path", path),
		zap.Int("rows", export.Total),
		zap.Int64("size", size))
	return path, nil
}
