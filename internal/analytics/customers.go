package analytics

import (
	"sort"
	"strings"

	"github.com/stekloline/analytics-api/internal/domain"
)

// noNameCustomer groups projects entered without a customer name, so they
// still show up in the customer report instead of disappearing.
const noNameCustomer = "Без имени"

// customerListCap bounds the detailed customer list; TotalCustomers still
// counts every distinct name matched.
const customerListCap = 100

// CanonicalCustomer normalizes a raw customer name for grouping: surrounding
// whitespace is stripped and blank names collapse into a shared placeholder.
func CanonicalCustomer(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return noNameCustomer
	}
	return name
}

// BuildCustomerReport groups projects by canonical customer name and ranks
// customers by revenue. A non-empty search narrows the report to customers
// whose name contains the term, case-insensitively.
func BuildCustomerReport(projects []domain.Project, setting *domain.Setting, baseCosts []domain.BaseCost, search string) *domain.CustomerReportDTO {
	search = strings.ToLower(strings.TrimSpace(search))

	byName := make(map[string]*domain.CustomerStats)
	var order []string
	topConfigs := NewSumCounter()

	for i := range projects {
		p := &projects[i]
		name := CanonicalCustomer(p.Customer)
		if search != "" && !strings.Contains(strings.ToLower(name), search) {
			continue
		}

		stats := byName[name]
		if stats == nil {
			stats = &domain.CustomerStats{
				Name:           name,
				Configurations: make(map[domain.ConfigurationKind]int),
				Projects:       []domain.ProjectSummary{},
			}
			byName[name] = stats
			order = append(order, name)
		}

		estimate := ComputeMargin(p, setting, baseCosts)
		kind := p.Data.Configuration
		if !kind.IsValid() {
			kind = domain.ConfigUnknown
		}

		stats.Orders++
		stats.Revenue += p.Price
		stats.Cost += estimate.Cost
		stats.Margin += estimate.Margin
		stats.Configurations[kind]++
		stats.Projects = append(stats.Projects, summarize(p))

		topConfigs.Add(string(kind), p.Price)
	}

	customers := make([]domain.CustomerStats, 0, len(order))
	for _, name := range order {
		customers = append(customers, *byName[name])
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].Revenue > customers[j].Revenue
	})
	total := len(customers)
	if len(customers) > customerListCap {
		customers = customers[:customerListCap]
	}

	return &domain.CustomerReportDTO{
		TotalCustomers:             total,
		Customers:                  customers,
		TopConfigurationsByRevenue: topConfigs.Top(rankingSize),
	}
}
