package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/commitment"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type ReflectCmd struct {
	Note []string `arg:"" optional:"" help:"Optional reflection note to keep with the reward."`
	Week string   `help:"Week key (YYYY-MM-Wn), defaults to the current week." default:""`
}

func (c *ReflectCmd) Run(ctx *Context) error {
	agg, _, err := ctx.loadAggregator()
	if err != nil {
		return err
	}

	key := c.Week
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

	tracker := commitment.New(agg.Targets().WeeklyStarTarget)
	exceeded, err := tracker.Claim(promise, claimed, stars)
	if err != nil {
		return err
	}

	if err := ctx.Store.SetClaimed(key, true); err != nil {
		return err
	}
	reward := models.Reward{
		ID:        uuid.New().String(),
		WeekKey:   key,
		Label:     strings.TrimSpace(strings.Join(c.Note, " ")),
		Exceeded:  exceeded,
		ClaimedAt: ctx.Now(),
	}
	if err := ctx.Store.AddReward(reward); err != nil {
		return err
	}

	fmt.Printf("Week %s claimed at %.1f stars.\n", key, stars)
	if exceeded {
		fmt.Println("You went well past the goal this week - exceeded badge earned.")
	}
	return nil
}

type UnclaimCmd struct {
	Week string `arg:"" help:"Week key (YYYY-MM-Wn), defaults to the current week." default:""`
}

func (c *UnclaimCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	key := c.Week
	if key == "" {
		key = models.WeekKey(ctx.Now())
	}

	claimed, err := ctx.Store.IsClaimed(key)
	if err != nil {
		return err
	}

	targets, err := ctx.Store.GetTargets()
	if err != nil {
		return err
	}
	tracker := commitment.New(targets.WeeklyStarTarget)
	if err := tracker.Unclaim(claimed); err != nil {
		return err
	}

	// Undo keeps the promise text; only the claim and its reward go.
	if err := ctx.Store.SetClaimed(key, false); err != nil {
		return err
	}
	if err := ctx.Store.RemoveReward(key); err != nil {
		return err
	}

	fmt.Printf("Week %s is no longer claimed.\n", key)
	return nil
}
