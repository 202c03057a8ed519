package models

import (
	"fmt"
	"time"
)

// WeeklyCommitment is the durable half of the weekly promise flow. Everything
// else about a week's commitment state is derived from these two fields plus
// the week's star total.
type WeeklyCommitment struct {
	PromiseText string `json:"promise_text,omitempty"`
	Claimed     bool   `json:"claimed"`
}

// WeekOfMonth returns the 1-based fixed week chunk for a day of the month.
// Weeks are 7-day partitions starting on the 1st, not calendar weeks: days
// 1-7 are week 1, 8-14 week 2, and so on. The last chunk may be short.
func WeekOfMonth(dayOfMonth int) int {
	return (dayOfMonth + 6) / 7
}

// WeekKey returns the "YYYY-MM-Wn" identifier for the week chunk containing t.
func WeekKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-W%d", t.Year(), int(t.Month()), WeekOfMonth(t.Day()))
}

// WeekKeyForDay is WeekKey for a YYYY-MM-DD day string.
func WeekKeyForDay(day string) (string, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", day, err)
	}
	return WeekKey(t), nil
}

// ParseWeekKey splits a "YYYY-MM-Wn" key back into its parts.
func ParseWeekKey(key string) (year int, month time.Month, week int, err error) {
	var m int
	if _, err = fmt.Sscanf(key, "%d-%d-W%d", &year, &m, &week); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid week key %q: %w", key, err)
	}
	if m < 1 || m > 12 || week < 1 || week > 5 {
		return 0, 0, 0, fmt.Errorf("invalid week key %q", key)
	}
	return year, time.Month(m), week, nil
}
