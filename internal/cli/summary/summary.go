package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/GustavoCaso/expense-tracker/internal/cli"
	"github.com/GustavoCaso/expense-tracker/internal/expense"
	"github.com/GustavoCaso/expense-tracker/internal/util"
)

type summaryCommand struct {
}

func NewCommand() cli.Command {
	return summaryCommand{}
}

func (c summaryCommand) Description() string {
	return "Show the total spent, optionally for a single month"
}

func (c summaryCommand) Usage() string {
	return "summary [--month <1-12>]"
}

func (c summaryCommand) Run(tracker *expense.Tracker, opts map[string]string, out io.Writer) error {
	var result string

	value, ok := opts["month"]
	if ok {
		month, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q", expense.ErrInvalidMonth, value)
		}

		result, err = tracker.MonthlySummary(month)
		if err != nil {
			return err
		}
	} else {
		var err error
		result, err = tracker.Summary()
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(out, util.ColorOutput(result, "bold"))
	return err
}
