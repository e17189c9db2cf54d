package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type DeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	// Deleting a habit also deletes every completion entry it owns, so
	// confirm unless the caller opted out.
	if !c.Yes {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete habit %q and all its entries?", c.Name)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println(warnStyle.Render("Aborted"))
			return nil
		}
	}

	if err := ctx.Store.DeleteHabit(c.Name); err != nil {
		return err
	}

	feedback("Deleted habit: %s", c.Name)
	return nil
}
