package cli

import (
	"fmt"
	"strings"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/commitment"
	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type PromiseSetCmd struct {
	Text []string `arg:"" help:"The promise, free text."`
	Week string   `help:"Week key (YYYY-MM-Wn), defaults to the current week." default:""`
}

func (c *PromiseSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(c.Text, " "))
	if err := commitment.ValidatePromise(text); err != nil {
		return err
	}

	key := c.Week
	if key == "" {
		key = models.WeekKey(ctx.Now())
	} else if _, _, _, err := models.ParseWeekKey(key); err != nil {
		return err
	}

	if err := ctx.Store.SetPromise(key, text); err != nil {
		return err
	}

	fmt.Printf("Promise for %s: %s\n", key, text)
	return nil
}

type PromiseShowCmd struct {
	Week string `arg:"" help:"Week key (YYYY-MM-Wn), defaults to the current week." default:""`
}

func (c *PromiseShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	key := c.Week
	if key == "" {
		key = models.WeekKey(ctx.Now())
	}

	promise, err := ctx.Store.GetPromise(key)
	if err != nil {
		return err
	}
	if promise == "" {
		fmt.Printf("No promise set for %s\n", key)
		return nil
	}
	fmt.Printf("Promise for %s: %s\n", key, promise)
	return nil
}
