package analytics

import (
	"github.com/stekloline/analytics-api/internal/domain"
)

// BuildFinancialReport estimates revenue, cost and margin totals overall and
// per configuration kind. Margins follow the tenant's base-cost settings; a
// tenant with no settings record gets zero margins and cost equal to revenue.
func BuildFinancialReport(projects []domain.Project, setting *domain.Setting, baseCosts []domain.BaseCost) *domain.FinancialReportDTO {
	report := &domain.FinancialReportDTO{
		ByConfiguration: make(map[domain.ConfigurationKind]*domain.ConfigurationFinance),
	}

	for i := range projects {
		p := &projects[i]
		estimate := ComputeMargin(p, setting, baseCosts)

		kind := p.Data.Configuration
		if !kind.IsValid() {
			kind = domain.ConfigUnknown
		}
		finance := report.ByConfiguration[kind]
		if finance == nil {
			finance = &domain.ConfigurationFinance{}
			report.ByConfiguration[kind] = finance
		}

		report.TotalOrders++
		report.TotalRevenue += p.Price
		report.TotalCost += estimate.Cost
		report.TotalMargin += estimate.Margin

		finance.Orders++
		finance.Revenue += p.Price
		finance.Cost += estimate.Cost
		finance.Margin += estimate.Margin
	}

	for _, finance := range report.ByConfiguration {
		finance.MarginPercent = Rate(finance.Margin, finance.Revenue)
		finance.AverageRevenue = SafeDiv(finance.Revenue, float64(finance.Orders))
		finance.AverageMargin = SafeDiv(finance.Margin, float64(finance.Orders))
	}
	report.AverageMarginPercent = Rate(report.TotalMargin, report.TotalRevenue)
	return report
}
