package summary

import (
	"bytes"
	"errors"
	"testing"

	"github.com/GustavoCaso/expense-tracker/internal/expense"
	"github.com/GustavoCaso/expense-tracker/internal/storage"
	"github.com/GustavoCaso/expense-tracker/internal/testutil"
)

func newTracker(t *testing.T) *expense.Tracker {
	t.Helper()

	s := testutil.SetupTestStore(t,
		storage.Expense{ID: 1, Amount: 2000, Description: "rent", Date: "2024-02-01T09:00:00.000Z"},
		storage.Expense{ID: 2, Amount: 3, Description: "gum", Date: "2024-02-14T12:00:00.000Z"},
		storage.Expense{ID: 3, Amount: 100, Description: "dinner", Date: "2024-01-20T20:00:00.000Z"},
	)

	return expense.New(s, testutil.TestLogger(t))
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]string
		want string
	}{
		{name: "all expenses", opts: map[string]string{}, want: "Total expenses: $2103\n"},
		{name: "february", opts: map[string]string{"month": "2"}, want: "Total expenses for February: $2003\n"},
		{name: "january", opts: map[string]string{"month": "1"}, want: "Total expenses for January: $100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := NewCommand().Run(newTracker(t), tt.opts, &out); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("Run() output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunInvalidMonth(t *testing.T) {
	for _, value := range []string{"0", "13", "", "feb"} {
		var out bytes.Buffer
		err := NewCommand().Run(newTracker(t), map[string]string{"month": value}, &out)
		if !errors.Is(err, expense.ErrInvalidMonth) {
			t.Errorf("Run(month=%q) error = %v, want %v", value, err, expense.ErrInvalidMonth)
		}
	}
}
