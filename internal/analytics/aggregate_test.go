package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stekloline/analytics-api/internal/analytics"
	"github.com/stekloline/analytics-api/internal/domain"
)

func TestGroupSumAbsorbsEmptyKeys(t *testing.T) {
	type item struct {
		key   string
		value float64
	}
	items := []item{
		{"a", 10},
		{"", 5},
		{"a", 2},
		{"", 1},
	}

	sums := analytics.GroupSum(items,
		func(i item) string { return i.key },
		func(i item) float64 { return i.value })

	assert.Equal(t, map[string]float64{"a": 12, "unknown": 6}, sums)

	var total float64
	for _, v := range sums {
		total += v
	}
	assert.InDelta(t, 18, total, 1e-9)
}

func TestCounterTop(t *testing.T) {
	c := analytics.NewCounter()
	for _, key := range []string{"b", "a", "a", "c", "b", "a", ""} {
		c.Add(key)
	}

	top := c.Top(2)
	assert.Equal(t, []domain.NameCount{
		{Name: "a", Count: 3},
		{Name: "b", Count: 2},
	}, top)

	all := c.Top(0)
	assert.Len(t, all, 4)
	assert.Equal(t, domain.NameCount{Name: "unknown", Count: 1}, all[3])
}

func TestCounterTiesKeepInsertionOrder(t *testing.T) {
	c := analytics.NewCounter()
	for _, key := range []string{"x", "y", "z"} {
		c.Add(key)
	}

	assert.Equal(t, []domain.NameCount{
		{Name: "x", Count: 1},
		{Name: "y", Count: 1},
		{Name: "z", Count: 1},
	}, c.Top(0))
}

func TestSumCounterTop(t *testing.T) {
	c := analytics.NewSumCounter()
	c.Add("glass", 100)
	c.Add("hardware", 300)
	c.Add("glass", 50)

	assert.Equal(t, []domain.NameRevenue{
		{Name: "hardware", Revenue: 300},
		{Name: "glass", Revenue: 150},
	}, c.Top(10))
}

func TestRate(t *testing.T) {
	assert.InDelta(t, 25, analytics.Rate(1, 4), 1e-9)
	assert.Zero(t, analytics.Rate(1, 0))
}

func TestSafeDiv(t *testing.T) {
	assert.InDelta(t, 2.5, analytics.SafeDiv(5, 2), 1e-9)
	assert.Zero(t, analytics.SafeDiv(5, 0))
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		raw   string
		value float64
		ok    bool
	}{
		{"2500", 2500, true},
		{" 2500.5 ", 2500.5, true},
		{"2500 мм", 2500, true},
		{"2,5", 2.5, true},
		{"", 0, false},
		{"высота", 0, false},
		{"-10", 0, false},
	}

	for _, tt := range tests {
		v, ok := analytics.ParseDimension(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.InDelta(t, tt.value, v, 1e-9, tt.raw)
	}
}
