package cli

import (
	"fmt"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/calendar"
)

type CalendarCmd struct {
	Month string `help:"Month to show (YYYY-MM), defaults to the current month." default:""`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	agg, _, err := ctx.loadAggregator()
	if err != nil {
		return err
	}

	year, month, err := ctx.resolveMonth(c.Month)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d\n", month, year)
	fmt.Println(" Mo  Tu  We  Th  Fr  Sa  Su")

	for _, row := range calendar.MonthGrid(year, month) {
		for _, day := range row {
			if day == 0 {
				fmt.Print("    ")
				continue
			}
			marker := " "
			if agg.DailyStars(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)) > 0 {
				marker = "*"
			}
			fmt.Printf("%3d%s", day, marker)
		}
		fmt.Println()
	}

	fmt.Println("\n* = day with stars")
	return nil
}
