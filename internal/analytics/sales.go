package analytics

import (
	"github.com/stekloline/analytics-api/internal/domain"
)

// BuildSalesReport aggregates one tenant snapshot into the sales report.
// Every project lands in exactly one of the completed/in-progress groups and
// in exactly one configuration slice, so the slices always partition the
// totals.
func BuildSalesReport(projects []domain.Project, statuses []domain.Status, setting *domain.Setting) *domain.SalesReportDTO {
	policy := NewCompletionPolicy(statuses, setting)

	report := &domain.SalesReportDTO{
		ConfigurationStats: make(map[domain.ConfigurationKind]*domain.ConfigurationSalesStats),
		DailyRevenue:       DailyRevenue(projects),
	}

	for i := range projects {
		p := &projects[i]
		kind := p.Data.Configuration
		if !kind.IsValid() {
			kind = domain.ConfigUnknown
		}
		stats := report.ConfigurationStats[kind]
		if stats == nil {
			stats = &domain.ConfigurationSalesStats{}
			report.ConfigurationStats[kind] = stats
		}

		report.TotalOrders++
		report.TotalRevenue += p.Price
		stats.TotalOrders++
		stats.Revenue += p.Price

		if policy.IsCompleted(p) {
			report.CompletedOrders++
			report.CompletedRevenue += p.Price
			stats.CompletedOrders++
			stats.CompletedRevenue += p.Price
		} else {
			report.InProgressOrders++
			report.InProgressRevenue += p.Price
			stats.InProgressOrders++
			stats.InProgressRevenue += p.Price
		}
	}

	report.AverageOrderValue = SafeDiv(report.TotalRevenue, float64(report.TotalOrders))
	report.AverageCompletedValue = SafeDiv(report.CompletedRevenue, float64(report.CompletedOrders))
	report.CompletionRate = Rate(float64(report.CompletedOrders), float64(report.TotalOrders))
	report.ConversionRate = Rate(report.CompletedRevenue, report.TotalRevenue)
	report.InProgressRate = Rate(float64(report.InProgressOrders), float64(report.TotalOrders))
	return report
}
