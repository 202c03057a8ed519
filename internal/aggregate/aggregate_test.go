package aggregate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/scoring"
)

func testCatalog() models.Catalog {
	return models.Catalog{
		{ID: "walk", Label: "Walk", MinDurationMin: 20},
		{ID: "read", Label: "Read", MinDurationMin: 15},
	}
}

func testAggregator(entries []models.SessionEntry, targets models.Targets) *Aggregator {
	engine := scoring.NewWithRand(rand.New(rand.NewSource(1)))
	return New(engine, testCatalog(), targets, entries)
}

func TestDailyStars_SumsEntryBreakdowns(t *testing.T) {
	entries := []models.SessionEntry{
		{Day: "2025-06-09", ActivityID: "walk", DurationMin: 30},
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 30, Mindful: true},
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 5}, // too short
	}
	agg := testAggregator(entries, models.Targets{})

	// 1.0 + (1+0.5)*0.7 + 0 = 2.05, rounded to one decimal.
	got := agg.DailyStars("2025-06-10")

	if got != 2.1 {
		t.Errorf("expected 2.1 stars for the day, got %v", got)
	}
}

func TestDailyStars_EmptyDayIsZero(t *testing.T) {
	agg := testAggregator(nil, models.Targets{})

	if got := agg.DailyStars("2025-06-10"); got != 0 {
		t.Errorf("expected 0 stars on an empty day, got %v", got)
	}
}

func TestWeekStars_UsesFixedMonthChunksNotCalendarWeeks(t *testing.T) {
	// June 7 and June 8 2025 fall inside the same Monday-aligned calendar
	// week, but in different fixed chunks (1-7 vs 8-14). The totals must
	// split along the chunk boundary.
	entries := []models.SessionEntry{
		{Day: "2025-06-07", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-08", ActivityID: "walk", DurationMin: 25},
	}
	agg := testAggregator(entries, models.Targets{})

	if got := agg.WeekStars(2025, time.June, 1); got != 1.0 {
		t.Errorf("expected week 1 (days 1-7) to total 1.0, got %v", got)
	}
	if got := agg.WeekStars(2025, time.June, 2); got != 1.0 {
		t.Errorf("expected week 2 (days 8-14) to total 1.0, got %v", got)
	}
}

func TestWeekStars_LastChunkClampsToMonthEnd(t *testing.T) {
	// June has 30 days, so week 5 is just days 29-30.
	entries := []models.SessionEntry{
		{Day: "2025-06-28", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-29", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-30", ActivityID: "walk", DurationMin: 25},
	}
	agg := testAggregator(entries, models.Targets{})

	if got := agg.WeekStars(2025, time.June, 5); got != 2.0 {
		t.Errorf("expected week 5 to cover only days 29-30 and total 2.0, got %v", got)
	}
}

func TestWeekStarsForKey(t *testing.T) {
	entries := []models.SessionEntry{
		{Day: "2025-06-03", ActivityID: "walk", DurationMin: 25},
	}
	agg := testAggregator(entries, models.Targets{})

	got, err := agg.WeekStarsForKey("2025-06-W1")
	if err != nil {
		t.Fatalf("WeekStarsForKey failed: %v", err)
	}
	if got != 1.0 {
		t.Errorf("expected 1.0 for 2025-06-W1, got %v", got)
	}

	if _, err := agg.WeekStarsForKey("not-a-key"); err == nil {
		t.Error("expected an error for a malformed week key")
	}
}

func TestMonthStats_TotalsAndTallies(t *testing.T) {
	entries := []models.SessionEntry{
		{Day: "2025-06-01", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-02", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-02", ActivityID: "read", DurationMin: 20, Mindful: true},
		{Day: "2025-06-03", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-03", ActivityID: "read", DurationMin: 5, Mindful: true}, // too short
	}
	targets := models.Targets{MonthlyTarget: 4, MonthlyStretch: 10}
	agg := testAggregator(entries, targets)

	stats := agg.MonthStats(2025, time.June)

	// Day 1: 1.0. Day 2: 1.0 + (1+0.5)*0.7 = 2.05 -> 2.1. Day 3: 1.0.
	if stats.TotalStars != 4.1 {
		t.Errorf("expected 4.1 total stars, got %v", stats.TotalStars)
	}
	if tally := stats.PerActivity["walk"]; tally.Qualifying != 3 || tally.Mindful != 0 {
		t.Errorf("expected walk tally {3 0}, got %+v", tally)
	}
	if tally := stats.PerActivity["read"]; tally.Qualifying != 1 || tally.Mindful != 1 {
		t.Errorf("expected read tally {1 1}, got %+v", tally)
	}
	if !stats.TargetReached {
		t.Error("expected the monthly target (4) to be reached at 4.1")
	}
	if stats.StretchReached {
		t.Error("did not expect the stretch goal (10) to be reached at 4.1")
	}
}

func TestMonthStats_EmptyMonth(t *testing.T) {
	agg := testAggregator(nil, models.Targets{MonthlyTarget: 1, MonthlyStretch: 2})

	stats := agg.MonthStats(2025, time.June)

	if stats.TotalStars != 0 {
		t.Errorf("expected 0 total stars, got %v", stats.TotalStars)
	}
	if stats.TargetReached || stats.StretchReached {
		t.Error("expected no goals reached on an empty month")
	}
}

func TestStreak_CountsBackFromToday(t *testing.T) {
	entries := []models.SessionEntry{
		{Day: "2025-06-08", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-09", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25},
		// gap on the 7th
		{Day: "2025-06-06", ActivityID: "walk", DurationMin: 25},
	}
	agg := testAggregator(entries, models.Targets{})

	if got := agg.Streak("2025-06-10"); got != 3 {
		t.Errorf("expected a 3 day streak, got %d", got)
	}
}

func TestStreak_ZeroWhenTodayIsQuiet(t *testing.T) {
	entries := []models.SessionEntry{
		{Day: "2025-06-09", ActivityID: "walk", DurationMin: 25},
	}
	agg := testAggregator(entries, models.Targets{})

	if got := agg.Streak("2025-06-10"); got != 0 {
		t.Errorf("expected a 0 day streak when today has no entry, got %d", got)
	}
}

func TestStreak_ZeroWhenNothingEverQualifies(t *testing.T) {
	entries := []models.SessionEntry{
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 5},
		{Day: "2025-06-09", ActivityID: "walk", DurationMin: 10},
	}
	agg := testAggregator(entries, models.Targets{})

	if got := agg.Streak("2025-06-10"); got != 0 {
		t.Errorf("expected a 0 day streak when no entry qualifies, got %d", got)
	}
}

func TestGoalMet_Boundary(t *testing.T) {
	agg := testAggregator(nil, models.Targets{WeeklyStarTarget: 10})

	if !agg.GoalMet(10) {
		t.Error("expected a total equal to the target to meet the goal")
	}
	if agg.GoalMet(9.9) {
		t.Error("did not expect 9.9 to meet a target of 10")
	}
}
