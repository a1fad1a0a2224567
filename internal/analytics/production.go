package analytics

import (
	"github.com/google/uuid"
	"github.com/stekloline/analytics-api/internal/domain"
)

// unmatchedStatusName labels the synthetic bucket that collects projects
// whose free-text status no longer resolves to any tenant status.
const (
	unmatchedStatusName  = "Unknown"
	unmatchedStatusColor = "#9E9E9E"
)

// BuildProductionReport distributes projects across the tenant's workflow
// stages. Every tenant status appears in the output even with zero projects;
// projects whose status cannot be resolved land in a trailing synthetic
// bucket. A single malformed status must not take down the whole report, so
// each bucket is filled independently and degrades to a zero-valued entry on
// failure.
func BuildProductionReport(projects []domain.Project, statuses []domain.Status) *domain.ProductionReportDTO {
	byID := make(map[uuid.UUID]int, len(statuses))
	byName := make(map[string]int, len(statuses))
	buckets := make([][]domain.Project, len(statuses)+1)
	for i, st := range statuses {
		byID[st.ID] = i
		if _, taken := byName[st.Name]; !taken {
			byName[st.Name] = i
		}
	}
	unmatched := len(statuses)

	for i := range projects {
		p := projects[i]
		idx := unmatched
		if p.StatusID != nil {
			if j, ok := byID[*p.StatusID]; ok {
				idx = j
			}
		} else if j, ok := byName[p.Status]; ok {
			idx = j
		}
		buckets[idx] = append(buckets[idx], p)
	}

	total := len(projects)
	load := make([]domain.StatusLoad, 0, len(statuses)+1)
	for i, st := range statuses {
		load = append(load, statusLoad(st.Name, st.Color, buckets[i], total))
	}
	if len(buckets[unmatched]) > 0 {
		load = append(load, statusLoad(unmatchedStatusName, unmatchedStatusColor, buckets[unmatched], total))
	}

	return &domain.ProductionReportDTO{
		TotalProjects:    total,
		StatusLoad:       load,
		AverageDwellDays: DwellAverages(projects),
		WeeklyLoad:       WeeklyLoad(projects),
	}
}

func statusLoad(name, color string, projects []domain.Project, total int) (sl domain.StatusLoad) {
	sl = domain.StatusLoad{Name: name, Color: color, Projects: []domain.ProjectSummary{}}
	defer func() {
		if r := recover(); r != nil {
			sl = domain.StatusLoad{Name: name, Color: color, Projects: []domain.ProjectSummary{}}
		}
	}()

	summaries := make([]domain.ProjectSummary, 0, len(projects))
	for i := range projects {
		summaries = append(summaries, summarize(&projects[i]))
	}
	sl.Count = len(projects)
	sl.Percentage = Rate(float64(len(projects)), float64(total))
	sl.Projects = summaries
	return sl
}

func summarize(p *domain.Project) domain.ProjectSummary {
	kind := p.Data.Configuration
	if !kind.IsValid() {
		kind = domain.ConfigUnknown
	}
	return domain.ProjectSummary{
		ID:            p.ID,
		Customer:      p.Customer,
		Configuration: kind,
		Price:         p.Price,
		CreatedAt:     p.CreatedAt,
	}
}
