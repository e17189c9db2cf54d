package cli

import "fmt"

type IDCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *IDCmd) Run(ctx *Context) error {
	id, err := ctx.Store.GetHabitID(c.Name)
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}
