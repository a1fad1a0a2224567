package analytics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/stekloline/analytics-api/internal/domain"
)

// unknownKey absorbs items whose grouping key is empty, so the sum over all
// groups always equals the sum over all items.
const unknownKey = "unknown"

// GroupSum accumulates value(item) per key(item). Items with an empty key
// are counted under "unknown" instead of being dropped.
func GroupSum[T any](items []T, key func(T) string, value func(T) float64) map[string]float64 {
	sums := make(map[string]float64)
	for _, item := range items {
		k := key(item)
		if k == "" {
			k = unknownKey
		}
		sums[k] += value(item)
	}
	return sums
}

// Counter accumulates integer counts keyed by name, remembering
// first-insertion order so rankings with tied counts stay deterministic.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count for key. Empty keys are counted under "unknown".
func (c *Counter) Add(key string) {
	if key == "" {
		key = unknownKey
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Top returns the n highest counts in descending order; ties keep the order
// in which the keys were first seen. n <= 0 returns every entry.
func (c *Counter) Top(n int) []domain.NameCount {
	ranked := make([]domain.NameCount, 0, len(c.order))
	for _, key := range c.order {
		ranked = append(ranked, domain.NameCount{Name: key, Count: c.counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// SumCounter accumulates float sums keyed by name, with the same ordering
// rules as Counter.
type SumCounter struct {
	sums  map[string]float64
	order []string
}

func NewSumCounter() *SumCounter {
	return &SumCounter{sums: make(map[string]float64)}
}

func (c *SumCounter) Add(key string, v float64) {
	if key == "" {
		key = unknownKey
	}
	if _, seen := c.sums[key]; !seen {
		c.order = append(c.order, key)
	}
	c.sums[key] += v
}

// Top returns the n largest sums in descending order; ties keep
// first-insertion order. n <= 0 returns every entry.
func (c *SumCounter) Top(n int) []domain.NameRevenue {
	ranked := make([]domain.NameRevenue, 0, len(c.order))
	for _, key := range c.order {
		ranked = append(ranked, domain.NameRevenue{Name: key, Revenue: c.sums[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Rate returns part/total as a percentage, 0 when total is zero.
func Rate(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// SafeDiv returns num/den, 0 when den is zero.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// ParseDimension parses a free-text dimension field ("2500", "2500.5 мм")
// into millimeters. Reports false for empty or non-numeric values so
// averages can skip them instead of counting zeros.
func ParseDimension(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Tolerate a trailing unit suffix after the number.
	end := len(s)
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != ',' && r != '-' {
			end = i
			break
		}
	}
	num := strings.ReplaceAll(s[:end], ",", ".")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
