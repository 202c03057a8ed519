package models

// Targets is the user's star goals. Read-only to the engine.
type Targets struct {
	WeeklyStarTarget float64 `json:"weekly_star_target"`
	MonthlyTarget    float64 `json:"monthly_target"`
	MonthlyStretch   float64 `json:"monthly_stretch"`
}
