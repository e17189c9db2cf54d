package cli

type CreateCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *CreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.CreateHabit(c.Name); err != nil {
		return err
	}

	feedback("Created habit: %s", c.Name)
	return nil
}
