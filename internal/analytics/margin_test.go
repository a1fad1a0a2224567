package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stekloline/analytics-api/internal/analytics"
	"github.com/stekloline/analytics-api/internal/domain"
)

func TestComputeMarginFixedMode(t *testing.T) {
	setting := &domain.Setting{BaseCostMode: domain.BaseCostModeFixed}
	baseCosts := []domain.BaseCost{
		{Name: "Стационарная конструкция", Value: 15000},
		{Name: "Цена за прямой слайдер", Value: 20000},
		{Name: "Базовая стоимость", Value: 10000},
	}

	tests := []struct {
		name    string
		project domain.Project
		margin  float64
	}{
		{
			name: "kind keyword matches catalog entry",
			project: domain.Project{
				Price: 100000,
				Data:  domain.ProjectData{Configuration: domain.ConfigStationary},
			},
			margin: 15000,
		},
		{
			name: "another kind matches its own entry",
			project: domain.Project{
				Price: 100000,
				Data:  domain.ProjectData{Configuration: domain.ConfigStraightSlider},
			},
			margin: 20000,
		},
		{
			name: "no kind entry falls back to the generic one",
			project: domain.Project{
				Price: 100000,
				Data:  domain.ProjectData{Configuration: domain.ConfigPartition},
			},
			margin: 10000,
		},
		{
			name: "unknown configuration uses the generic entry",
			project: domain.Project{
				Price: 100000,
				Data:  domain.ProjectData{Configuration: domain.ConfigUnknown},
			},
			margin: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate := analytics.ComputeMargin(&tt.project, setting, baseCosts)
			assert.InDelta(t, tt.margin, estimate.Margin, 1e-9)
			assert.InDelta(t, tt.project.Price-tt.margin, estimate.Cost, 1e-9)
		})
	}
}

func TestComputeMarginEmptyCatalog(t *testing.T) {
	setting := &domain.Setting{BaseCostMode: domain.BaseCostModeFixed}
	project := &domain.Project{
		Price: 50000,
		Data:  domain.ProjectData{Configuration: domain.ConfigStationary},
	}

	estimate := analytics.ComputeMargin(project, setting, nil)
	assert.Zero(t, estimate.Margin)
	assert.InDelta(t, 50000, estimate.Cost, 1e-9)
}

func TestComputeMarginPercentageMode(t *testing.T) {
	project := &domain.Project{Price: 80000}

	setting := &domain.Setting{
		BaseCostMode:       domain.BaseCostModePercentage,
		BaseCostPercentage: 25,
	}
	estimate := analytics.ComputeMargin(project, setting, nil)
	assert.InDelta(t, 20000, estimate.Margin, 1e-9)
	assert.InDelta(t, 60000, estimate.Cost, 1e-9)

	setting.BaseCostPercentage = 0
	estimate = analytics.ComputeMargin(project, setting, nil)
	assert.Zero(t, estimate.Margin)
	assert.InDelta(t, 80000, estimate.Cost, 1e-9)
}

func TestComputeMarginCustomColorSurcharge(t *testing.T) {
	setting := &domain.Setting{
		BaseCostMode:         domain.BaseCostModePercentage,
		BaseCostPercentage:   20,
		CustomColorSurcharge: 50,
	}
	project := &domain.Project{
		Price: 100000,
		Data:  domain.ProjectData{CustomColor: true},
	}

	// 20% of revenue plus 50% surcharge on the 30% hardware share.
	estimate := analytics.ComputeMargin(project, setting, nil)
	assert.InDelta(t, 20000+15000, estimate.Margin, 1e-9)
	assert.InDelta(t, 65000, estimate.Cost, 1e-9)
}

func TestComputeMarginCostNeverNegative(t *testing.T) {
	setting := &domain.Setting{BaseCostMode: domain.BaseCostModeFixed}
	baseCosts := []domain.BaseCost{{Name: "Базовая стоимость", Value: 90000}}
	project := &domain.Project{Price: 50000}

	estimate := analytics.ComputeMargin(project, setting, baseCosts)
	assert.InDelta(t, 90000, estimate.Margin, 1e-9)
	assert.Zero(t, estimate.Cost)
}

func TestComputeMarginWithoutSettings(t *testing.T) {
	project := &domain.Project{Price: 30000}

	estimate := analytics.ComputeMargin(project, nil, nil)
	assert.Zero(t, estimate.Margin)
	assert.InDelta(t, 30000, estimate.Cost, 1e-9)
}
