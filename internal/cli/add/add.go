package add

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GustavoCaso/expense-tracker/internal/cli"
	"github.com/GustavoCaso/expense-tracker/internal/expense"
	"github.com/GustavoCaso/expense-tracker/internal/options"
)

type addCommand struct {
}

func NewCommand() cli.Command {
	return addCommand{}
}

func (c addCommand) Description() string {
	return "Record a new expense"
}

func (c addCommand) Usage() string {
	return "add --amount <int> --description <text>"
}

func (c addCommand) Run(tracker *expense.Tracker, opts map[string]string, out io.Writer) error {
	amountValue := opts["amount"]
	description := opts["description"]
	if amountValue == "" || strings.TrimSpace(description) == "" {
		return options.ErrInvalidOptions
	}

	amount, err := strconv.Atoi(amountValue)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not an integer", options.ErrInvalidOptions, amountValue)
	}

	result, err := tracker.Add(amount, description)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, result)
	return err
}
