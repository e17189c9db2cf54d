package cli

type MarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, 'yesterday' or 'y'). Defaults to today."`
}

func (c *MarkCmd) Run(ctx *Context) error {
	day, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.Mark(c.Name, day); err != nil {
		return err
	}

	dateStr, err := day.Format()
	if err != nil {
		return err
	}
	feedback("Marked %s for %s", c.Name, dateStr)
	return nil
}
