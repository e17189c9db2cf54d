package cli

type UnmarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, 'yesterday' or 'y'). Defaults to today."`
}

func (c *UnmarkCmd) Run(ctx *Context) error {
	day, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.Unmark(c.Name, day); err != nil {
		return err
	}

	dateStr, err := day.Format()
	if err != nil {
		return err
	}
	feedback("Unmarked %s for %s", c.Name, dateStr)
	return nil
}
