package cli

import (
	"fmt"
	"sort"
)

type MonthCmd struct {
	Month string `help:"Month to show (YYYY-MM), defaults to the current month." default:""`
}

func (c *MonthCmd) Run(ctx *Context) error {
	agg, catalog, err := ctx.loadAggregator()
	if err != nil {
		return err
	}

	year, month, err := ctx.resolveMonth(c.Month)
	if err != nil {
		return err
	}

	stats := agg.MonthStats(year, month)
	targets := agg.Targets()

	fmt.Printf("%s %d: %.1f stars\n\n", month, year, stats.TotalStars)

	if len(stats.PerActivity) > 0 {
		ids := make([]string, 0, len(stats.PerActivity))
		for id := range stats.PerActivity {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			label := id
			if a, ok := catalog.ByID(id); ok {
				label = a.Label
			}
			tally := stats.PerActivity[id]
			fmt.Printf("  %-20s %3d sessions, %d mindful\n", label, tally.Qualifying, tally.Mindful)
		}
		fmt.Println()
	}

	switch {
	case stats.StretchReached:
		fmt.Printf("Stretch goal reached (%.1f)!\n", targets.MonthlyStretch)
	case stats.TargetReached:
		fmt.Printf("Monthly target reached (%.1f). Stretch at %.1f.\n", targets.MonthlyTarget, targets.MonthlyStretch)
	default:
		fmt.Printf("Monthly target: %.1f (stretch %.1f)\n", targets.MonthlyTarget, targets.MonthlyStretch)
	}
	return nil
}
