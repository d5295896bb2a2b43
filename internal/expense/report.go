package expense

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/GustavoCaso/expense-tracker/internal/storage"
)

var ErrInvalidMonth = errors.New("invalid month number")

// MonthName returns the English name of month, numbered from 1.
func MonthName(month int) (string, error) {
	if month < int(time.January) || month > int(time.December) {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	return time.Month(month).String(), nil
}

// List renders one line per expense: the ID right aligned, the day, the
// description left aligned and the amount. Column widths fit the widest
// value currently stored.
func (t *Tracker) List() ([]string, error) {
	expenses, err := t.store.Read()
	if err != nil {
		return nil, err
	}

	idWidth, descriptionWidth := 0, 0
	for _, e := range expenses {
		idWidth = max(idWidth, len(strconv.Itoa(e.ID)))
		descriptionWidth = max(descriptionWidth, utf8.RuneCountInString(e.Description))
	}

	lines := make([]string, 0, len(expenses))
	for _, e := range expenses {
		lines = append(lines, fmt.Sprintf("%*d %s %-*s $%d", idWidth, e.ID, e.Day(), descriptionWidth, e.Description, e.Amount))
	}

	return lines, nil
}

func (t *Tracker) Summary() (string, error) {
	expenses, err := t.store.Read()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Total expenses: $%d", total(expenses)), nil
}

func (t *Tracker) MonthlySummary(month int) (string, error) {
	name, err := MonthName(month)
	if err != nil {
		return "", err
	}

	expenses, err := t.ExpensesInMonth(month)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Total expenses for %s: $%d", name, total(expenses)), nil
}

// ExpensesInMonth returns the expenses dated in the given calendar month of
// any year. Expenses with an unparsable date are skipped.
func (t *Tracker) ExpensesInMonth(month int) ([]storage.Expense, error) {
	if _, err := MonthName(month); err != nil {
		return nil, err
	}

	expenses, err := t.store.Read()
	if err != nil {
		return nil, err
	}

	matching := []storage.Expense{}
	for _, e := range expenses {
		date, parseErr := time.Parse(time.RFC3339, e.Date)
		if parseErr != nil {
			t.logger.Warn("Skipping expense with invalid date", "id", e.ID, "date", e.Date)
			continue
		}

		if date.UTC().Month() == time.Month(month) {
			matching = append(matching, e)
		}
	}

	return matching, nil
}

func total(expenses []storage.Expense) int {
	sum := 0
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}
