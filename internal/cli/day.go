package cli

import (
	"fmt"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type DayCmd struct {
	Date string `arg:"" help:"Day to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	agg, catalog, err := ctx.loadAggregator()
	if err != nil {
		return err
	}

	day, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return err
	}

	dayEntries, indices := models.EntriesForDay(entries, day)

	fmt.Printf("Sessions for %s:\n\n", day)
	if len(dayEntries) == 0 {
		fmt.Println("  Nothing logged")
		return nil
	}

	for pos, e := range dayEntries {
		label := e.ActivityID
		if a, ok := catalog.ByID(e.ActivityID); ok {
			label = a.Label
		}
		marker := ""
		if e.Mindful {
			marker = " (mindful)"
		}

		b := ctx.Engine.ComputeAt(indices[pos], catalog, entries)
		fmt.Printf("  [%d] %-20s %3d min%-10s %s stars\n", pos, label, e.DurationMin, marker, formatStars(b.StarsEarned))
	}

	fmt.Printf("\nDay total: %.1f stars\n", agg.DailyStars(day))
	return nil
}
