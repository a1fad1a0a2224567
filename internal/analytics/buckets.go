package analytics

import (
	"fmt"
	"time"

	"github.com/stekloline/analytics-api/internal/domain"
)

const millisPerDay = 24 * 60 * 60 * 1000

// DayKey buckets a timestamp into its UTC calendar day, "2006-01-02".
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ISOWeekKey buckets a timestamp into its ISO-8601 week, "2006-W01".
// The ISO year can differ from the calendar year at year boundaries:
// 2023-12-31 falls into 2023-W52 while 2024-01-01 opens 2024-W01.
func ISOWeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// DwellAverages walks every project's status history and reports, per
// departed status name, the average number of days projects sat in that
// status before moving on. A transition contributes the interval between
// its own timestamp and the next entry's timestamp; the current (last)
// status of each project has no closing timestamp and contributes nothing.
func DwellAverages(projects []domain.Project) map[string]float64 {
	type dwell struct {
		totalMs float64
		count   int
	}
	totals := make(map[string]dwell)

	for i := range projects {
		history := projects[i].StatusHistory
		for j := 0; j+1 < len(history); j++ {
			delta := history[j+1].Date.Sub(history[j].Date)
			if delta < 0 {
				// Out-of-order entries are malformed; skip the pair
				// rather than producing a negative dwell.
				continue
			}
			key := history[j].Status
			if key == "" {
				key = unknownKey
			}
			d := totals[key]
			d.totalMs += float64(delta.Milliseconds())
			d.count++
			totals[key] = d
		}
	}

	averages := make(map[string]float64, len(totals))
	for name, d := range totals {
		if d.count == 0 {
			continue
		}
		averages[name] = d.totalMs / float64(d.count) / millisPerDay
	}
	return averages
}

// WeeklyLoad counts projects created per ISO week.
func WeeklyLoad(projects []domain.Project) map[string]int {
	load := make(map[string]int)
	for i := range projects {
		load[ISOWeekKey(projects[i].CreatedAt)]++
	}
	return load
}

// DailyRevenue sums project prices per UTC calendar day of creation.
func DailyRevenue(projects []domain.Project) map[string]float64 {
	return GroupSum(projects, func(p domain.Project) string {
		return DayKey(p.CreatedAt)
	}, func(p domain.Project) float64 {
		return p.Price
	})
}
