package list

import (
	"fmt"
	"io"

	"github.com/GustavoCaso/expense-tracker/internal/cli"
	"github.com/GustavoCaso/expense-tracker/internal/expense"
)

type listCommand struct {
}

func NewCommand() cli.Command {
	return listCommand{}
}

func (c listCommand) Description() string {
	return "List every expense"
}

func (c listCommand) Usage() string {
	return "list"
}

func (c listCommand) Run(tracker *expense.Tracker, _ map[string]string, out io.Writer) error {
	lines, err := tracker.List()
	if err != nil {
		return err
	}

	for _, line := range lines {
		if _, err = fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}
