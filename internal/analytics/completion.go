// Package analytics implements the report aggregation core: completion
// classification, margin estimation, temporal bucketing and the report
// builders. Everything in this package is a pure function over an in-memory
// snapshot of one tenant's records; nothing here performs I/O or mutates
// its inputs.
package analytics

import (
	"github.com/google/uuid"
	"github.com/stekloline/analytics-api/internal/domain"
)

// Legacy free-text labels that always mean "completed". The system moved from
// free-text statuses to structured Status records without migrating old
// projects, so both classification paths stay alive indefinitely.
const (
	LegacyStatusPaid      = "Оплачено"
	LegacyStatusCompleted = "Завершен"
)

// CompletionPolicy decides whether a project counts as completed for
// analytics purposes.
type CompletionPolicy interface {
	IsCompleted(project *domain.Project) bool
}

// statusPolicy classifies by structured flag OR by name, never hiding one
// path behind the other.
type statusPolicy struct {
	statusByID     map[uuid.UUID]domain.Status
	completedNames map[string]struct{}
}

// NewCompletionPolicy builds the classifier for one tenant snapshot. The
// configured completed-status names from the tenant settings are matched
// case-sensitively, exactly as they were entered.
func NewCompletionPolicy(statuses []domain.Status, setting *domain.Setting) CompletionPolicy {
	p := &statusPolicy{
		statusByID:     make(map[uuid.UUID]domain.Status, len(statuses)),
		completedNames: make(map[string]struct{}),
	}
	for _, st := range statuses {
		p.statusByID[st.ID] = st
	}
	if setting != nil {
		for _, name := range setting.CompletedStatuses {
			p.completedNames[name] = struct{}{}
		}
	}
	return p
}

func (p *statusPolicy) IsCompleted(project *domain.Project) bool {
	if project == nil {
		return false
	}
	if project.StatusID != nil {
		if st, ok := p.statusByID[*project.StatusID]; ok && st.IsCompletedForAnalytics {
			return true
		}
	}
	if project.Status == "" {
		return false
	}
	if _, ok := p.completedNames[project.Status]; ok {
		return true
	}
	return project.Status == LegacyStatusPaid || project.Status == LegacyStatusCompleted
}
