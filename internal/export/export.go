package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/GustavoCaso/expense-tracker/internal/storage"
)

var header = []string{"ID", "Date", "Description", "Amount"}

// CSV writes expenses to writer in store order.
// format: ID,Date,Description,Amount
func CSV(writer io.Writer, expenses []storage.Expense) error {
	w := csv.NewWriter(writer)

	records := make([][]string, 0, len(expenses)+1)
	records = append(records, header)

	for _, e := range expenses {
		records = append(records, []string{
			strconv.Itoa(e.ID),
			e.Day(),
			e.Description,
			strconv.Itoa(e.Amount),
		})
	}

	// WriteAll flushes
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}
