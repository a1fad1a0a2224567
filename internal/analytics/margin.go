package analytics

import (
	"strings"

	"github.com/stekloline/analytics-api/internal/domain"
)

// hardwareShare is the assumed fraction of an order's revenue attributable
// to hardware, used when pricing the custom-color surcharge.
const hardwareShare = 0.30

// genericBaseCostName is the fallback catalog entry matched when no
// kind-specific base cost exists for a project's configuration.
const genericBaseCostName = "базовая стоимость"

// baseCostKeywords maps each configuration kind to the lowercase substrings
// that identify its base-cost catalog entry. Tenants name their catalog
// entries freely ("Стационарная конструкция", "Цена за прямой слайдер"),
// so matching is by substring, not equality.
var baseCostKeywords = map[domain.ConfigurationKind][]string{
	domain.ConfigStationary:     {"стационар", "статичн"},
	domain.ConfigStraightSlider: {"прям", "линейн"},
	domain.ConfigCornerSlider:   {"углов", "угол"},
	domain.ConfigUnique:         {"уникальн", "нестандарт"},
	domain.ConfigPartition:      {"перегород", "экран"},
}

// MarginEstimate is the per-project margin breakdown. Cost is derived as
// revenue minus margin, floored at zero.
type MarginEstimate struct {
	Margin float64
	Cost   float64
}

// ComputeMargin estimates the margin of a single project under the tenant's
// base-cost settings.
//
// In fixed mode the margin is the value of the first catalog entry whose
// lowercase name contains a keyword for the project's configuration kind;
// when no kind-specific entry matches and the catalog is non-empty, the
// generic "базовая стоимость" entry is tried instead. Exactly one of the
// two lookups applies to a project, never both. In percentage mode the
// margin is a flat share of revenue. Either way, projects flagged as
// custom-color earn an extra surcharge on the hardware share of revenue.
func ComputeMargin(project *domain.Project, setting *domain.Setting, baseCosts []domain.BaseCost) MarginEstimate {
	if project == nil {
		return MarginEstimate{}
	}
	revenue := project.Price

	var margin float64
	if setting != nil {
		switch setting.BaseCostMode {
		case domain.BaseCostModePercentage:
			if setting.BaseCostPercentage > 0 {
				margin = revenue * setting.BaseCostPercentage / 100
			}
		default:
			margin = fixedMargin(project.Data.Configuration, baseCosts)
		}
		if project.Data.CustomColor && setting.CustomColorSurcharge > 0 {
			margin += revenue * hardwareShare * (setting.CustomColorSurcharge / 100)
		}
	}

	cost := revenue - margin
	if cost < 0 {
		cost = 0
	}
	return MarginEstimate{Margin: margin, Cost: cost}
}

func fixedMargin(kind domain.ConfigurationKind, baseCosts []domain.BaseCost) float64 {
	if len(baseCosts) == 0 {
		return 0
	}
	if keywords, ok := baseCostKeywords[kind]; ok {
		for i := range baseCosts {
			name := strings.ToLower(baseCosts[i].Name)
			for _, kw := range keywords {
				if strings.Contains(name, kw) {
					return baseCosts[i].Value
				}
			}
		}
	}
	for i := range baseCosts {
		if strings.Contains(strings.ToLower(baseCosts[i].Name), genericBaseCostName) {
			return baseCosts[i].Value
		}
	}
	return 0
}
