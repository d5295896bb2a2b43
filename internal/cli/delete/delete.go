package delete

import (
	"fmt"
	"io"
	"strconv"

	"github.com/GustavoCaso/expense-tracker/internal/cli"
	"github.com/GustavoCaso/expense-tracker/internal/expense"
	"github.com/GustavoCaso/expense-tracker/internal/options"
)

type deleteCommand struct {
}

func NewCommand() cli.Command {
	return deleteCommand{}
}

func (c deleteCommand) Description() string {
	return "Delete an expense by ID"
}

func (c deleteCommand) Usage() string {
	return "delete --id <int>"
}

func (c deleteCommand) Run(tracker *expense.Tracker, opts map[string]string, out io.Writer) error {
	value, ok := opts["id"]
	if !ok {
		return options.ErrInvalidOptions
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %q", expense.ErrInvalidID, value)
	}

	result, err := tracker.Delete(id)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, result)
	return err
}
