package cli

type RenameCmd struct {
	Name    string `arg:"" help:"Current habit name."`
	NewName string `arg:"" help:"New habit name."`
}

func (c *RenameCmd) Run(ctx *Context) error {
	if err := ctx.Store.RenameHabit(c.Name, c.NewName); err != nil {
		return err
	}

	feedback("Renamed habit: %s -> %s", c.Name, c.NewName)
	return nil
}
