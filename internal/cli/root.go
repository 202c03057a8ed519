package cli

import (
	"fmt"
	"time"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/aggregate"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/backup"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/logger"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/scoring"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *scoring.Engine
	Now    func() time.Time
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (ctx *Context) today() string {
	return ctx.Now().Format("2006-01-02")
}

// resolveDay accepts "today", "yesterday" or a YYYY-MM-DD date.
func (ctx *Context) resolveDay(arg string) (string, error) {
	switch arg {
	case "", "today":
		return ctx.today(), nil
	case "yesterday":
		return ctx.Now().AddDate(0, 0, -1).Format("2006-01-02"), nil
	}
	t, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return "", fmt.Errorf("invalid date, use YYYY-MM-DD or 'today': %w", err)
	}
	return t.Format("2006-01-02"), nil
}

// resolveMonth accepts "" (current month) or YYYY-MM.
func (ctx *Context) resolveMonth(arg string) (int, time.Month, error) {
	if arg == "" {
		now := ctx.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", arg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month, use YYYY-MM: %w", err)
	}
	return t.Year(), t.Month(), nil
}

// loadAggregator loads the document and builds an aggregator over the
// current snapshot.
func (ctx *Context) loadAggregator() (*aggregate.Aggregator, models.Catalog, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, nil, err
	}

	catalog, err := ctx.Store.GetActivities()
	if err != nil {
		return nil, nil, err
	}
	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return nil, nil, err
	}
	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return nil, nil, err
	}

	return aggregate.New(ctx.Engine, catalog, targets, entries), catalog, nil
}

func formatStars(stars float64) string {
	return fmt.Sprintf("%.2f", stars)
}

func printBreakdown(b models.ScoreBreakdown) {
	if !b.Qualifies() {
		fmt.Println("  No stars this time - the session was under the activity's minimum (or the activity is unknown).")
		return
	}

	fmt.Printf("  Base %.1f", b.BaseStars)
	if b.PresenceBonus > 0 {
		fmt.Printf("  +%.1f presence", b.PresenceBonus)
	}
	if b.ReentryMultiplier != 1.0 {
		fmt.Printf("  x%.2f reentry", b.ReentryMultiplier)
	}
	if b.PacingMultiplier != 1.0 {
		fmt.Printf("  x%.2f pacing", b.PacingMultiplier)
	}
	fmt.Printf("  =  %s stars\n", formatStars(b.StarsEarned))
	if b.Message != "" {
		fmt.Printf("  %s\n", b.Message)
	}
}
