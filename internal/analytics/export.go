package analytics

import (
	"time"

	"github.com/stekloline/analytics-api/internal/domain"
)

// notSpecified substitutes missing export fields so every cell of the flat
// export carries something a human can read.
const notSpecified = "Не указано"

const exportDateLayout = "2006-01-02"

// BuildExport flattens a project snapshot into denormalized, human-readable
// rows ready for CSV rendering or a frontend table. The caller supplies the
// generation timestamp, so identical inputs produce identical payloads.
func BuildExport(projects []domain.Project, reportType string, generatedAt time.Time) *domain.ExportDTO {
	rows := make([]domain.ExportRow, 0, len(projects))
	for i := range projects {
		rows = append(rows, exportRow(&projects[i]))
	}
	if reportType == "" {
		reportType = "all"
	}
	return &domain.ExportDTO{
		ReportType:  reportType,
		GeneratedAt: generatedAt.UTC(),
		Total:       len(rows),
		Rows:        rows,
	}
}

func exportRow(p *domain.Project) domain.ExportRow {
	configuration := notSpecified
	if kind := p.Data.Configuration; kind.IsValid() && kind != domain.ConfigUnknown {
		configuration = string(kind)
	}
	customColor := "Нет"
	if p.Data.CustomColor {
		customColor = "Да"
	}
	return domain.ExportRow{
		ID:             p.ID,
		Customer:       CanonicalCustomer(p.Customer),
		Configuration:  configuration,
		Status:         orNotSpecified(p.Status),
		GlassColor:     orNotSpecified(p.Data.GlassColor),
		GlassThickness: orNotSpecified(p.Data.GlassThickness),
		HardwareColor:  orNotSpecified(p.Data.HardwareColor),
		Width:          orNotSpecified(p.Data.Width),
		Height:         orNotSpecified(p.Data.Height),
		Length:         orNotSpecified(p.Data.Length),
		CustomColor:    customColor,
		Price:          p.Price,
		CreatedAt:      p.CreatedAt.UTC().Format(exportDateLayout),
	}
}

func orNotSpecified(value string) string {
	if value == "" {
		return notSpecified
	}
	return value
}
