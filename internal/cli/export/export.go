package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/GustavoCaso/expense-tracker/internal/cli"
	"github.com/GustavoCaso/expense-tracker/internal/expense"
	internalExport "github.com/GustavoCaso/expense-tracker/internal/export"
	"github.com/GustavoCaso/expense-tracker/internal/storage"
)

type exportCommand struct {
}

func NewCommand() cli.Command {
	return exportCommand{}
}

func (c exportCommand) Description() string {
	return "Export expenses as CSV"
}

func (c exportCommand) Usage() string {
	return "export [--month <1-12>]"
}

func (c exportCommand) Run(tracker *expense.Tracker, opts map[string]string, out io.Writer) error {
	var expenses []storage.Expense
	var err error

	if value, ok := opts["month"]; ok {
		month, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("%w: %q", expense.ErrInvalidMonth, value)
		}
		expenses, err = tracker.ExpensesInMonth(month)
	} else {
		expenses, err = tracker.Expenses()
	}
	if err != nil {
		return err
	}

	return internalExport.CSV(out, expenses)
}
