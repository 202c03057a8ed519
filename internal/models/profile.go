package models

import "time"

// Profile holds user-level metadata created at init time.
type Profile struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Reward records a claimed weekly reflection. Exceeded is display-only: it
// marks weeks whose total cleared 1.5x the weekly target at claim time.
type Reward struct {
	ID        string    `json:"id"`
	WeekKey   string    `json:"week_key"`
	Label     string    `json:"label,omitempty"`
	Exceeded  bool      `json:"exceeded"`
	ClaimedAt time.Time `json:"claimed_at"`
}
