package cli

import (
	"fmt"
)

type TargetShowCmd struct{}

func (c *TargetShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return err
	}

	fmt.Println("Targets:")
	fmt.Printf("  Weekly star target:   %s\n", formatStars(targets.WeeklyStarTarget))
	fmt.Printf("  Monthly target:       %s\n", formatStars(targets.MonthlyTarget))
	fmt.Printf("  Monthly stretch goal: %s\n", formatStars(targets.MonthlyStretch))
	return nil
}

type TargetSetCmd struct {
	Weekly  float64 `help:"New weekly star target." default:"-1"`
	Monthly float64 `help:"New monthly target." default:"-1"`
	Stretch float64 `help:"New monthly stretch goal." default:"-1"`
}

func (c *TargetSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return err
	}

	if c.Weekly >= 0 {
		targets.WeeklyStarTarget = c.Weekly
	}
	if c.Monthly >= 0 {
		targets.MonthlyTarget = c.Monthly
	}
	if c.Stretch >= 0 {
		targets.MonthlyStretch = c.Stretch
	}

	if targets.WeeklyStarTarget <= 0 {
		return fmt.Errorf("weekly star target must be positive")
	}
	if targets.MonthlyStretch < targets.MonthlyTarget {
		return fmt.Errorf("stretch goal (%.1f) cannot be below the monthly target (%.1f)",
			targets.MonthlyStretch, targets.MonthlyTarget)
	}

	if err := ctx.Store.SaveTargets(targets); err != nil {
		return err
	}

	fmt.Println("Targets updated.")
	return nil
}
