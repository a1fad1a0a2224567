package analytics_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stekloline/analytics-api/internal/analytics"
	"github.com/stekloline/analytics-api/internal/domain"
)

func TestCompletionPolicy(t *testing.T) {
	doneID := uuid.New()
	openID := uuid.New()
	statuses := []domain.Status{
		{BaseModel: domain.BaseModel{ID: openID}, Name: "В работе"},
		{BaseModel: domain.BaseModel{ID: doneID}, Name: "Готово", IsCompletedForAnalytics: true},
	}
	setting := &domain.Setting{CompletedStatuses: []string{"Выдан заказ"}}
	policy := analytics.NewCompletionPolicy(statuses, setting)

	tests := []struct {
		name      string
		project   domain.Project
		completed bool
	}{
		{
			name:      "structured status flagged as completed",
			project:   domain.Project{StatusID: &doneID, Status: "Готово"},
			completed: true,
		},
		{
			name:      "structured status not flagged",
			project:   domain.Project{StatusID: &openID, Status: "В работе"},
			completed: false,
		},
		{
			name:      "configured name matches",
			project:   domain.Project{Status: "Выдан заказ"},
			completed: true,
		},
		{
			name:      "configured name is case sensitive",
			project:   domain.Project{Status: "выдан заказ"},
			completed: false,
		},
		{
			name:      "legacy paid label",
			project:   domain.Project{Status: "Оплачено"},
			completed: true,
		},
		{
			name:      "legacy completed label",
			project:   domain.Project{Status: "Завершен"},
			completed: true,
		},
		{
			name:      "unflagged structured status with completed free text",
			project:   domain.Project{StatusID: &openID, Status: "Оплачено"},
			completed: true,
		},
		{
			name:      "empty status",
			project:   domain.Project{},
			completed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.completed, policy.IsCompleted(&tt.project))
		})
	}
}

func TestCompletionPolicyWithoutSettings(t *testing.T) {
	policy := analytics.NewCompletionPolicy(nil, nil)

	assert.True(t, policy.IsCompleted(&domain.Project{Status: "Оплачено"}))
	assert.False(t, policy.IsCompleted(&domain.Project{Status: "Выдан заказ"}))
	assert.False(t, policy.IsCompleted(nil))
}
