package aggregate

import (
	"fmt"
	"math"
	"time"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/scoring"
)

// Aggregator computes rollups over a session log snapshot. Every call is a
// full recompute; at personal-tracker volumes that is a handful of entries
// per day, so there is nothing worth caching.
type Aggregator struct {
	engine  *scoring.Engine
	catalog models.Catalog
	targets models.Targets
	entries []models.SessionEntry
}

func New(engine *scoring.Engine, catalog models.Catalog, targets models.Targets, entries []models.SessionEntry) *Aggregator {
	return &Aggregator{
		engine:  engine,
		catalog: catalog,
		targets: targets,
		entries: entries,
	}
}

// ActivityTally counts a month's qualifying sessions for one activity.
type ActivityTally struct {
	Qualifying int
	Mindful    int
}

// MonthStats is the month rollup: total stars, per-activity session tallies,
// and whether the monthly target and stretch were reached.
type MonthStats struct {
	TotalStars     float64
	PerActivity    map[string]ActivityTally
	TargetReached  bool
	StretchReached bool
}

// DailyStars sums the stars earned by every entry on day, rounded to one
// decimal.
func (a *Aggregator) DailyStars(day string) float64 {
	total := 0.0
	for i, e := range a.entries {
		if e.Day == day {
			total += a.engine.ComputeAt(i, a.catalog, a.entries).StarsEarned
		}
	}
	return round1(total)
}

// WeekStars sums DailyStars over the fixed month chunk
// [(week-1)*7+1, min(week*7, daysInMonth)]. Weeks partition the month from
// the 1st; they are never Monday-aligned calendar weeks.
func (a *Aggregator) WeekStars(year int, month time.Month, week int) float64 {
	first := (week-1)*7 + 1
	last := week * 7
	if max := daysInMonth(year, month); last > max {
		last = max
	}

	total := 0.0
	for d := first; d <= last; d++ {
		total += a.DailyStars(dayString(year, month, d))
	}
	return round1(total)
}

// WeekStarsForKey is WeekStars for a "YYYY-MM-Wn" key.
func (a *Aggregator) WeekStarsForKey(key string) (float64, error) {
	year, month, week, err := models.ParseWeekKey(key)
	if err != nil {
		return 0, err
	}
	return a.WeekStars(year, month, week), nil
}

// MonthStats walks every day of the month and accumulates the rollup.
func (a *Aggregator) MonthStats(year int, month time.Month) MonthStats {
	stats := MonthStats{PerActivity: make(map[string]ActivityTally)}

	for d := 1; d <= daysInMonth(year, month); d++ {
		stats.TotalStars += a.DailyStars(dayString(year, month, d))
	}
	stats.TotalStars = round1(stats.TotalStars)

	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	for _, e := range a.entries {
		if len(e.Day) < len(prefix) || e.Day[:len(prefix)] != prefix {
			continue
		}
		if !scoring.Qualifies(e, a.catalog) {
			continue
		}
		tally := stats.PerActivity[e.ActivityID]
		tally.Qualifying++
		if e.Mindful {
			tally.Mindful++
		}
		stats.PerActivity[e.ActivityID] = tally
	}

	stats.TargetReached = stats.TotalStars >= a.targets.MonthlyTarget
	stats.StretchReached = stats.TotalStars >= a.targets.MonthlyStretch
	return stats
}

// Streak counts consecutive days ending at today (YYYY-MM-DD) that each
// have at least one qualifying entry. A quiet today means a streak of zero.
func (a *Aggregator) Streak(today string) int {
	t, err := time.Parse("2006-01-02", today)
	if err != nil {
		return 0
	}

	streak := 0
	for scoring.HasQualifyingOn(t.Format("2006-01-02"), a.entries, a.catalog) {
		streak++
		t = t.AddDate(0, 0, -1)
	}
	return streak
}

// GoalMet reports whether a weekly total reaches the weekly star target.
func (a *Aggregator) GoalMet(weeklyTotal float64) bool {
	return weeklyTotal >= a.targets.WeeklyStarTarget
}

// Targets returns the target configuration the aggregator was built with.
func (a *Aggregator) Targets() models.Targets {
	return a.targets
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dayString(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
