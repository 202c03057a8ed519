package models

// SessionEntry is a single logged activity session.
//
// Entries form an append-only ordered log: slice position is the only
// identity an entry has, and scoring reads that order directly (pacing and
// the presence bonus are first-in-log-wins). Reordering the log, e.g. by
// sorting on a timestamp, changes scores.
type SessionEntry struct {
	Day         string `json:"day"` // YYYY-MM-DD format
	ActivityID  string `json:"activity_id"`
	DurationMin int    `json:"duration_min"`
	Mindful     bool   `json:"mindful"`
}

// EntriesForDay returns the entries logged on day, preserving log order.
// The returned indices map each filtered entry back to its position in the
// full log, which is what positional removal operates on.
func EntriesForDay(entries []SessionEntry, day string) ([]SessionEntry, []int) {
	var filtered []SessionEntry
	var indices []int
	for i, e := range entries {
		if e.Day == day {
			filtered = append(filtered, e)
			indices = append(indices, i)
		}
	}
	return filtered, indices
}
