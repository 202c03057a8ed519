package models

// ScoreBreakdown is the computed value of one session entry. It is derived
// on demand and never persisted. Message is cosmetic flavor text and must
// not feed back into any total.
type ScoreBreakdown struct {
	BaseStars         float64 `json:"base_stars"`
	PresenceBonus     float64 `json:"presence_bonus"`
	ReentryMultiplier float64 `json:"reentry_multiplier"`
	PacingMultiplier  float64 `json:"pacing_multiplier"`
	StarsEarned       float64 `json:"stars_earned"`
	Message           string  `json:"message"`
}

// Qualifies reports whether the entry earned any stars at all. A zero
// breakdown is the normal "session too short to count" outcome, not an error.
func (b ScoreBreakdown) Qualifies() bool {
	return b.StarsEarned > 0
}
