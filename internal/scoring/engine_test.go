package scoring

import (
	"math/rand"
	"testing"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

func testEngine() *Engine {
	return NewWithRand(rand.New(rand.NewSource(1)))
}

func walkCatalog() models.Catalog {
	return models.Catalog{
		{ID: "walk", Label: "Walk", MinDurationMin: 20},
		{ID: "read", Label: "Read", MinDurationMin: 15},
	}
}

func TestCompute_TooShortEarnsNothing(t *testing.T) {
	engine := testEngine()

	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 15}

	b := engine.Compute(entry, walkCatalog(), nil)

	if b.StarsEarned != 0 {
		t.Errorf("expected 0 stars for a 15 minute walk with a 20 minute minimum, got %v", b.StarsEarned)
	}
	if b.BaseStars != 0 || b.PresenceBonus != 0 || b.ReentryMultiplier != 0 || b.PacingMultiplier != 0 {
		t.Errorf("expected an all-zero breakdown, got %+v", b)
	}
}

func TestCompute_UnknownActivityEarnsNothing(t *testing.T) {
	engine := testEngine()

	// An id orphaned by a catalog edit is a zero, not an error.
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "deleted-activity", DurationMin: 60}

	b := engine.Compute(entry, walkCatalog(), nil)

	if b.StarsEarned != 0 {
		t.Errorf("expected 0 stars for an unresolved activity id, got %v", b.StarsEarned)
	}
}

func TestCompute_FirstQualifyingSessionOfDay(t *testing.T) {
	engine := testEngine()

	yesterday := models.SessionEntry{Day: "2025-06-09", ActivityID: "walk", DurationMin: 30}
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25}

	b := engine.Compute(entry, walkCatalog(), []models.SessionEntry{yesterday})

	if b.StarsEarned != 1.0 {
		t.Errorf("expected (1+0)*1.0*1.0 = 1.0 stars, got %v", b.StarsEarned)
	}
	if b.ReentryMultiplier != 1.0 {
		t.Errorf("expected reentry multiplier 1.0 when yesterday was active, got %v", b.ReentryMultiplier)
	}
	if b.Message == "" {
		t.Error("expected a flavor message on a qualifying breakdown")
	}
}

func TestCompute_SecondMindfulSessionGetsPresenceAndPacing(t *testing.T) {
	engine := testEngine()

	entries := []models.SessionEntry{
		{Day: "2025-06-09", ActivityID: "walk", DurationMin: 30},
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25},
	}
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 30, Mindful: true}

	b := engine.Compute(entry, walkCatalog(), entries)

	if b.PresenceBonus != 0.5 {
		t.Errorf("expected presence bonus 0.5 for the first mindful session of the day, got %v", b.PresenceBonus)
	}
	if b.PacingMultiplier != 0.7 {
		t.Errorf("expected pacing multiplier 0.7 for the day's second qualifying session, got %v", b.PacingMultiplier)
	}
	if b.StarsEarned != 1.05 {
		t.Errorf("expected (1+0.5)*1.0*0.7 = 1.05 stars, got %v", b.StarsEarned)
	}
}

func TestCompute_PresenceBonusOncePerDay(t *testing.T) {
	engine := testEngine()

	entries := []models.SessionEntry{
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25, Mindful: true},
	}
	second := models.SessionEntry{Day: "2025-06-10", ActivityID: "read", DurationMin: 20, Mindful: true}

	b := engine.Compute(second, walkCatalog(), entries)

	if b.PresenceBonus != 0 {
		t.Errorf("expected no presence bonus when an earlier mindful session already qualified, got %v", b.PresenceBonus)
	}
}

func TestCompute_PresenceBonusSkipsNonQualifyingMindful(t *testing.T) {
	engine := testEngine()

	// A too-short mindful session does not consume the day's bonus.
	entries := []models.SessionEntry{
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 10, Mindful: true},
	}
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "read", DurationMin: 20, Mindful: true}

	b := engine.Compute(entry, walkCatalog(), entries)

	if b.PresenceBonus != 0.5 {
		t.Errorf("expected the first qualifying mindful session to take the bonus, got %v", b.PresenceBonus)
	}
}

func TestCompute_ReentryMultiplierTable(t *testing.T) {
	engine := testEngine()

	cases := []struct {
		lastActiveDay string
		want          float64
	}{
		{"2025-06-09", 1.0},  // yesterday, 0 missed
		{"2025-06-08", 1.2},  // 1 missed day
		{"2025-06-07", 1.35}, // 2 missed days
		{"2025-06-06", 1.5},  // 3 missed days
		{"2025-06-01", 1.5},  // far past, still capped
	}

	for _, tc := range cases {
		entries := []models.SessionEntry{
			{Day: tc.lastActiveDay, ActivityID: "walk", DurationMin: 30},
		}
		entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25}

		b := engine.Compute(entry, walkCatalog(), entries)

		if b.ReentryMultiplier != tc.want {
			t.Errorf("last active %s: expected reentry multiplier %v, got %v", tc.lastActiveDay, tc.want, b.ReentryMultiplier)
		}
	}
}

func TestCompute_ReentryAfterThreeMissedDaysAppliesToBonus(t *testing.T) {
	engine := testEngine()

	entries := []models.SessionEntry{
		{Day: "2025-06-06", ActivityID: "walk", DurationMin: 30},
	}
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25, Mindful: true}

	b := engine.Compute(entry, walkCatalog(), entries)

	if b.StarsEarned != 2.25 {
		t.Errorf("expected (1+0.5)*1.5*1.0 = 2.25 stars, got %v", b.StarsEarned)
	}
}

func TestCompute_FirstEverSessionIsNotAReentry(t *testing.T) {
	engine := testEngine()

	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25}

	b := engine.Compute(entry, walkCatalog(), nil)

	if b.ReentryMultiplier != 1.0 {
		t.Errorf("expected reentry multiplier 1.0 on an empty log, got %v", b.ReentryMultiplier)
	}
}

func TestCompute_GapBeyondScanWindowStillCounts(t *testing.T) {
	engine := testEngine()

	entries := []models.SessionEntry{
		{Day: "2025-05-01", ActivityID: "walk", DurationMin: 30},
	}
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25}

	b := engine.Compute(entry, walkCatalog(), entries)

	if b.ReentryMultiplier != 1.5 {
		t.Errorf("expected reentry multiplier 1.5 after a 40 day gap, got %v", b.ReentryMultiplier)
	}
}

func TestCompute_PacingMultiplierTable(t *testing.T) {
	engine := testEngine()

	wants := []float64{1.0, 0.7, 0.5, 0.35, 0.35}

	var entries []models.SessionEntry
	for i, want := range wants {
		entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25}

		b := engine.Compute(entry, walkCatalog(), entries)

		if b.PacingMultiplier != want {
			t.Errorf("session %d of the day: expected pacing multiplier %v, got %v", i+1, want, b.PacingMultiplier)
		}
		entries = append(entries, entry)
	}
}

func TestCompute_PacingIgnoresNonQualifyingSessions(t *testing.T) {
	engine := testEngine()

	entries := []models.SessionEntry{
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 5},
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 10},
	}
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25}

	b := engine.Compute(entry, walkCatalog(), entries)

	if b.PacingMultiplier != 1.0 {
		t.Errorf("expected too-short sessions to not advance the pacing ordinal, got %v", b.PacingMultiplier)
	}
}

func TestComputeAt_UsesLogOrderNotDateOrder(t *testing.T) {
	engine := testEngine()

	// Pacing counts earlier log positions only; an entry logged later for
	// the same day must not affect an earlier entry's score.
	entries := []models.SessionEntry{
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25},
		{Day: "2025-06-10", ActivityID: "walk", DurationMin: 30},
	}

	first := engine.ComputeAt(0, walkCatalog(), entries)
	second := engine.ComputeAt(1, walkCatalog(), entries)

	if first.PacingMultiplier != 1.0 {
		t.Errorf("expected the first logged session to pace at 1.0, got %v", first.PacingMultiplier)
	}
	if second.PacingMultiplier != 0.7 {
		t.Errorf("expected the second logged session to pace at 0.7, got %v", second.PacingMultiplier)
	}
}

func TestCompute_MessagePoolsFollowContextPriority(t *testing.T) {
	engine := testEngine()

	inPool := func(pool []string, msg string) bool {
		for _, m := range pool {
			if m == msg {
				return true
			}
		}
		return false
	}

	// Reentry beats presence.
	entries := []models.SessionEntry{
		{Day: "2025-06-05", ActivityID: "walk", DurationMin: 30},
	}
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25, Mindful: true}
	b := engine.Compute(entry, walkCatalog(), entries)
	if !inPool(reentryMessages, b.Message) {
		t.Errorf("expected a reentry message for a comeback session, got %q", b.Message)
	}

	// Presence next.
	entry = models.SessionEntry{Day: "2025-06-05", ActivityID: "walk", DurationMin: 25, Mindful: true}
	b = engine.Compute(entry, walkCatalog(), entries)
	if !inPool(presenceMessages, b.Message) {
		t.Errorf("expected a presence message, got %q", b.Message)
	}

	// Plain otherwise.
	entry = models.SessionEntry{Day: "2025-06-05", ActivityID: "walk", DurationMin: 25}
	b = engine.Compute(entry, walkCatalog(), entries)
	if !inPool(plainMessages, b.Message) {
		t.Errorf("expected a plain message, got %q", b.Message)
	}
}

func TestCompute_MessageNeverChangesStars(t *testing.T) {
	catalog := walkCatalog()
	entry := models.SessionEntry{Day: "2025-06-10", ActivityID: "walk", DurationMin: 25, Mindful: true}

	// Different seeds may pick different messages but must agree on points.
	a := NewWithRand(rand.New(rand.NewSource(7))).Compute(entry, catalog, nil)
	b := NewWithRand(rand.New(rand.NewSource(99))).Compute(entry, catalog, nil)

	if a.StarsEarned != b.StarsEarned {
		t.Errorf("star totals diverged across rng seeds: %v vs %v", a.StarsEarned, b.StarsEarned)
	}
}
