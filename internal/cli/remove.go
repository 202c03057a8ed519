package cli

import "fmt"

type RemoveCmd struct {
	Index int    `arg:"" help:"Position of the session in the day's list (see 'starflow day')."`
	Date  string `help:"Day to remove from (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.RemoveEntryForDay(day, c.Index); err != nil {
		return err
	}

	fmt.Printf("Removed session %d from %s\n", c.Index, day)
	return nil
}
