package constants

const (
	// Scoring constants:
	// - BaseStars is awarded to every session that meets its activity's
	//   minimum duration.
	// - PresenceBonus is added to at most one mindful qualifying session per
	//   day, first in the log wins.
	// - ReentryScanDays bounds the backward scan for the most recent active
	//   day when computing the reentry multiplier.
	// - ExceededFactor marks a claimed week as "exceeded" when its total
	//   clears ExceededFactor x the weekly target.
	BaseStars       = 1.0
	PresenceBonus   = 0.5
	ReentryScanDays = 14
	ExceededFactor  = 1.5

	// Default targets written at init time.
	DefaultWeeklyStarTarget = 10.0
	DefaultMonthlyTarget    = 36.0
	DefaultMonthlyStretch   = 50.0
)

func init() {
	// Runtime validation: the stretch goal must sit above the base goal
	if DefaultMonthlyStretch <= DefaultMonthlyTarget {
		panic("DefaultMonthlyStretch must be greater than DefaultMonthlyTarget")
	}
}
