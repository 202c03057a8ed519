package cli

import "fmt"

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	agg, _, err := ctx.loadAggregator()
	if err != nil {
		return err
	}

	streak := agg.Streak(ctx.today())
	switch streak {
	case 0:
		fmt.Println("No streak yet - log a qualifying session today to start one.")
	case 1:
		fmt.Println("1 day streak. Come back tomorrow.")
	default:
		fmt.Printf("%d day streak.\n", streak)
	}
	return nil
}
