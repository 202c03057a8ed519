package scoring

import (
	"math"
	"math/rand"
	"time"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/constants"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

// Reentry multiplier by count of fully-missed days before the session's day.
// Three or more missed days take the max.
var reentryMultipliers = map[int]float64{
	0: 1.0,
	1: 1.2,
	2: 1.35,
}

const reentryMultiplierMax = 1.5

// Pacing multiplier by 1-based ordinal among the day's qualifying sessions,
// in log order. The 4th and later sessions take the tail value; there is no
// daily cap, later sessions always add a shrinking positive amount.
var pacingMultipliers = map[int]float64{
	1: 1.0,
	2: 0.7,
	3: 0.5,
}

const pacingMultiplierTail = 0.35

// Engine turns session entries into star breakdowns. Point totals are a
// deterministic function of the inputs; the rng feeds only the flavor
// message on the breakdown.
type Engine struct {
	rng *rand.Rand
}

func New() *Engine {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates an engine with an explicit random source, so tests can
// pin the flavor message.
func NewWithRand(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// ComputeAt scores the entry at position i in the log. Pacing ordinal and
// the presence bonus consider only entries before position i; the reentry
// scan considers the whole log.
func (e *Engine) ComputeAt(i int, catalog models.Catalog, entries []models.SessionEntry) models.ScoreBreakdown {
	return e.compute(entries[i], catalog, entries, entries[:i])
}

// Compute scores a session as if it were appended to the end of the log.
// Used to preview a session before it is recorded.
func (e *Engine) Compute(entry models.SessionEntry, catalog models.Catalog, entries []models.SessionEntry) models.ScoreBreakdown {
	return e.compute(entry, catalog, entries, entries)
}

func (e *Engine) compute(entry models.SessionEntry, catalog models.Catalog, all, prior []models.SessionEntry) models.ScoreBreakdown {
	activity, ok := catalog.ByID(entry.ActivityID)
	if !ok || entry.DurationMin < activity.MinDurationMin {
		// Not qualifying is the normal "too short to count" outcome, or an
		// id orphaned by a catalog edit. Either way: zero, not an error.
		return models.ScoreBreakdown{}
	}

	base := constants.BaseStars

	presence := 0.0
	if entry.Mindful && !hasMindfulQualifying(entry.Day, prior, catalog) {
		presence = constants.PresenceBonus
	}

	missed := missedDaysBefore(entry.Day, all, catalog)
	reentry := reentryMultiplier(missed)
	pacing := pacingMultiplier(pacingOrdinal(entry.Day, prior, catalog))

	stars := round2((base + presence) * reentry * pacing)

	return models.ScoreBreakdown{
		BaseStars:         base,
		PresenceBonus:     presence,
		ReentryMultiplier: reentry,
		PacingMultiplier:  pacing,
		StarsEarned:       stars,
		Message:           e.pickMessage(missed, presence),
	}
}

// Qualifies reports whether the entry meets its activity's minimum duration.
func Qualifies(entry models.SessionEntry, catalog models.Catalog) bool {
	activity, ok := catalog.ByID(entry.ActivityID)
	return ok && entry.DurationMin >= activity.MinDurationMin
}

// HasQualifyingOn reports whether any entry on day qualifies.
func HasQualifyingOn(day string, entries []models.SessionEntry, catalog models.Catalog) bool {
	for _, e := range entries {
		if e.Day == day && Qualifies(e, catalog) {
			return true
		}
	}
	return false
}

// hasMindfulQualifying reports whether a mindful qualifying entry for day
// already exists among prior entries. At most one presence bonus per day,
// first qualifying in log order wins.
func hasMindfulQualifying(day string, prior []models.SessionEntry, catalog models.Catalog) bool {
	for _, e := range prior {
		if e.Day == day && e.Mindful && Qualifies(e, catalog) {
			return true
		}
	}
	return false
}

// pacingOrdinal is the 1-based position of the next qualifying session on
// day, counting prior entries in log order.
func pacingOrdinal(day string, prior []models.SessionEntry, catalog models.Catalog) int {
	k := 1
	for _, e := range prior {
		if e.Day == day && Qualifies(e, catalog) {
			k++
		}
	}
	return k
}

// missedDaysBefore counts the fully-missed days between day and the nearest
// earlier day with a qualifying entry, scanning back at most
// constants.ReentryScanDays. A gap longer than the scan window still counts
// as a reentry; a log with no qualifying day before this one does not (a
// first-ever session is not a comeback).
func missedDaysBefore(day string, entries []models.SessionEntry, catalog models.Catalog) int {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return 0
	}

	for i := 1; i <= constants.ReentryScanDays; i++ {
		prev := t.AddDate(0, 0, -i).Format("2006-01-02")
		if HasQualifyingOn(prev, entries, catalog) {
			return i - 1
		}
	}

	for _, e := range entries {
		if e.Day < day && Qualifies(e, catalog) {
			return constants.ReentryScanDays
		}
	}
	return 0
}

func reentryMultiplier(missed int) float64 {
	if m, ok := reentryMultipliers[missed]; ok {
		return m
	}
	return reentryMultiplierMax
}

func pacingMultiplier(ordinal int) float64 {
	if m, ok := pacingMultipliers[ordinal]; ok {
		return m
	}
	return pacingMultiplierTail
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
