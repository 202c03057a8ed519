package cli

import (
	"fmt"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type LogCmd struct {
	Activity string `arg:"" help:"Activity id."`
	Duration int    `arg:"" help:"Session duration in minutes."`
	Mindful  bool   `help:"The session was fully present."`
	Date     string `help:"Day to log for (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *LogCmd) Run(ctx *Context) error {
	if c.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	catalog, err := ctx.Store.GetActivities()
	if err != nil {
		return err
	}
	if _, ok := catalog.ByID(c.Activity); !ok {
		return fmt.Errorf("unknown activity %q, see 'starflow activity list'", c.Activity)
	}

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return err
	}

	entry := models.SessionEntry{
		Day:         day,
		ActivityID:  c.Activity,
		DurationMin: c.Duration,
		Mindful:     c.Mindful,
	}

	// Preview against the snapshot the entry is about to join.
	breakdown := ctx.Engine.Compute(entry, catalog, entries)

	if err := ctx.Store.AppendEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Logged %d min of %s on %s:\n", c.Duration, c.Activity, day)
	printBreakdown(breakdown)
	return nil
}
