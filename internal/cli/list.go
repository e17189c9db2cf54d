package cli

import (
	"os"

	"github.com/julianstephens/htrackr/internal/grid"
)

type ListCmd struct {
	Date    string `arg:"" optional:"" help:"Month to list (YYYY-MM). Defaults to the current month."`
	Compact bool   `short:"c" help:"Compact print."`
}

func (c *ListCmd) Run(ctx *Context) error {
	year, month, err := resolveMonth(c.Date)
	if err != nil {
		return err
	}

	names, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	// Compact mode (flag or config default) is reserved for a future dense
	// layout; today both modes render the same grid.
	_ = c.Compact || ctx.Compact

	return grid.Render(os.Stdout, ctx.Store, year, month, names)
}
