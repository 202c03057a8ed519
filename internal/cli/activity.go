package cli

import (
	"fmt"
	"strings"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type ActivityAddCmd struct {
	ID    string `arg:"" help:"Short id, e.g. 'walk'."`
	Label string `help:"Display label, defaults to the id." default:""`
	Min   int    `help:"Minimum qualifying duration in minutes." default:"10"`
	Color string `help:"Display color." default:""`
}

func (c *ActivityAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id := strings.TrimSpace(strings.ToLower(c.ID))
	if id == "" {
		return fmt.Errorf("activity id cannot be empty")
	}
	if c.Min < 0 {
		return fmt.Errorf("minimum duration cannot be negative")
	}

	label := c.Label
	if label == "" {
		label = strings.ToUpper(id[:1]) + id[1:]
	}

	activity := models.ActivityDefinition{
		ID:             id,
		Label:          label,
		MinDurationMin: c.Min,
		Color:          c.Color,
	}
	if err := ctx.Store.AddActivity(activity); err != nil {
		return err
	}

	fmt.Printf("Added activity %q (min %d min)\n", id, c.Min)
	return nil
}

type ActivityListCmd struct{}

func (c *ActivityListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	catalog, err := ctx.Store.GetActivities()
	if err != nil {
		return err
	}

	if len(catalog) == 0 {
		fmt.Println("No activities yet, add one with 'starflow activity add'.")
		return nil
	}

	fmt.Println("Activities:")
	for _, a := range catalog {
		fmt.Printf("  %-12s %-20s min %d min\n", a.ID, a.Label, a.MinDurationMin)
	}
	return nil
}

type ActivityEditCmd struct {
	ID    string `arg:"" help:"Activity id to edit."`
	Label string `help:"New display label." default:""`
	Min   int    `help:"New minimum qualifying duration in minutes." default:"-1"`
	Color string `help:"New display color." default:""`
}

func (c *ActivityEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	catalog, err := ctx.Store.GetActivities()
	if err != nil {
		return err
	}
	activity, ok := catalog.ByID(c.ID)
	if !ok {
		return fmt.Errorf("unknown activity %q", c.ID)
	}

	if c.Label != "" {
		activity.Label = c.Label
	}
	if c.Min >= 0 {
		activity.MinDurationMin = c.Min
	}
	if c.Color != "" {
		activity.Color = c.Color
	}

	if err := ctx.Store.UpdateActivity(activity); err != nil {
		return err
	}

	fmt.Printf("Updated activity %q\n", c.ID)
	return nil
}
