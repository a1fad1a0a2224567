package analytics

import (
	"github.com/stekloline/analytics-api/internal/domain"
)

const rankingSize = 10

// dimensionSums accumulates parsable dimension values so unparsable entries
// never drag an average toward zero.
type dimensionSums struct {
	width, height, length    float64
	widthN, heightN, lengthN int
}

func (d *dimensionSums) add(data *domain.ProjectData) {
	if v, ok := ParseDimension(data.Width); ok {
		d.width += v
		d.widthN++
	}
	if v, ok := ParseDimension(data.Height); ok {
		d.height += v
		d.heightN++
	}
	if v, ok := ParseDimension(data.Length); ok {
		d.length += v
		d.lengthN++
	}
}

func (d *dimensionSums) averages() domain.DimensionAverages {
	return domain.DimensionAverages{
		Width:  SafeDiv(d.width, float64(d.widthN)),
		Height: SafeDiv(d.height, float64(d.heightN)),
		Length: SafeDiv(d.length, float64(d.lengthN)),
	}
}

// BuildConfigurationReport ranks the popularity of configurations, colors and
// glass thicknesses, and averages the entered dimensions overall and per
// configuration kind.
func BuildConfigurationReport(projects []domain.Project) *domain.ConfigurationReportDTO {
	configurations := NewCounter()
	glassColors := NewCounter()
	thicknesses := NewCounter()
	hardwareColors := NewCounter()
	combinations := NewCounter()

	overall := &dimensionSums{}
	byKind := make(map[domain.ConfigurationKind]*dimensionSums)

	for i := range projects {
		data := &projects[i].Data
		kind := data.Configuration
		if !kind.IsValid() {
			kind = domain.ConfigUnknown
		}

		configurations.Add(string(kind))
		glassColors.Add(data.GlassColor)
		thicknesses.Add(data.GlassThickness)
		hardwareColors.Add(data.HardwareColor)
		if data.GlassColor != "" && data.HardwareColor != "" {
			combinations.Add(data.GlassColor + " + " + data.HardwareColor)
		}

		overall.add(data)
		sums := byKind[kind]
		if sums == nil {
			sums = &dimensionSums{}
			byKind[kind] = sums
		}
		sums.add(data)
	}

	dimensions := make(map[domain.ConfigurationKind]domain.DimensionAverages, len(byKind))
	for kind, sums := range byKind {
		dimensions[kind] = sums.averages()
	}

	return &domain.ConfigurationReportDTO{
		TotalProjects:             len(projects),
		PopularConfigurations:     configurations.Top(rankingSize),
		PopularGlassColors:        glassColors.Top(rankingSize),
		GlassThickness:            thicknesses.Top(0),
		PopularHardwareColors:     hardwareColors.Top(rankingSize),
		PopularColorCombinations:  combinations.Top(rankingSize),
		AverageDimensions:         overall.averages(),
		DimensionsByConfiguration: dimensions,
	}
}
