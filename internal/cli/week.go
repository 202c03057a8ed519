package cli

import (
	"fmt"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/commitment"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type WeekCmd struct {
	Key string `arg:"" help:"Week key (YYYY-MM-Wn), defaults to the current week." default:""`
}

func (c *WeekCmd) Run(ctx *Context) error {
	agg, _, err := ctx.loadAggregator()
	if err != nil {
		return err
	}

	key := c.Key
	if key == "" {
		key = models.WeekKey(ctx.Now())
	}

	stars, err := agg.WeekStarsForKey(key)
	if err != nil {
		return err
	}

	promise, err := ctx.Store.GetPromise(key)
	if err != nil {
		return err
	}
	claimed, err := ctx.Store.IsClaimed(key)
	if err != nil {
		return err
	}

	targets := agg.Targets()
	tracker := commitment.New(targets.WeeklyStarTarget)
	state := tracker.StateFor(promise, claimed, stars)

	fmt.Printf("Week %s: %.1f / %.1f stars\n", key, stars, targets.WeeklyStarTarget)
	if promise != "" {
		fmt.Printf("Promise: %s\n", promise)
	}
	fmt.Printf("State: %s\n", state)

	if state == commitment.StateGoalMetPendingReflection {
		fmt.Println("Constellation goal met - claim your reward with 'starflow reflect'.")
	}
	return nil
}
