package export

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
		storage.Expense{ID: 2, Amount: 100, Description: "dinner", Date: "2024-01-20T20:00:00.000Z"},
	)

	return expense.New(s, testutil.TestLogger(t))
}

func TestDescription(t *testing.T) {
	if desc := NewCommand().Description(); desc != "Export expenses as CSV" {
		t.Errorf("Description() = %v, want %v", desc, "Export expenses as CSV")
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		opts map[string]string
		want string
	}{
		{
			name: "all expenses",
			opts: map[string]string{},
			want: "ID,Date,Description,Amount\n1,2024-02-01,rent,2000\n2,2024-01-20,dinner,100\n",
		},
		{
			name: "single month",
			opts: map[string]string{"month": "1"},
			want: "ID,Date,Description,Amount\n2,2024-01-20,dinner,100\n",
		},
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
	var out bytes.Buffer
	err := NewCommand().Run(newTracker(t), map[string]string{"month": "13"}, &out)
	if !errors.Is(err, expense.ErrInvalidMonth) {
		t.Errorf("Run() error = %v, want %v", err, expense.ErrInvalidMonth)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}
