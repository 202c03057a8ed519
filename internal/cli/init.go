package cli

import (
	"fmt"

	"github.com/mcisneros0046-pixel/Star-Flow/internal/models"
)

type InitCmd struct {
	Name string `help:"Profile name." default:""`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Name != "" {
		profile, err := ctx.Store.GetProfile()
		if err != nil {
			profile = models.Profile{CreatedAt: ctx.Now()}
		}
		profile.Name = c.Name
		if err := ctx.Store.SaveProfile(profile); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized starflow storage at %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Add an activity with 'starflow activity add' and log your first session with 'starflow log'.")
	return nil
}
