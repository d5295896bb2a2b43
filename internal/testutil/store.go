package testutil

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/GustavoCaso/expense-tracker/internal/storage"
)

// StartTime is the instant FixedClock returns in tests that do not care
// about a specific date.
var StartTime = time.Date(2024, time.January, 2, 11, 1, 58, 135000000, time.UTC)

// SetupTestStore returns a store in a temporary directory seeded with
// expenses. Without expenses the store file does not exist yet.
func SetupTestStore(t *testing.T, expenses ...storage.Expense) *storage.Store {
	t.Helper()

	s, err := storage.New(filepath.Join(t.TempDir(), "expenses.json"), TestLogger(t))
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	if len(expenses) > 0 {
		if err = s.Write(expenses); err != nil {
			t.Fatalf("Failed to seed test store: %v", err)
		}
	}

	return s
}

// AssertStored fails the test unless the store holds exactly want.
func AssertStored(t *testing.T, s *storage.Store, want []storage.Expense) {
	t.Helper()

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Failed to read test store: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("stored expenses = %v, want %v", got, want)
	}
}

func FixedClock(at time.Time) func() time.Time {
	return func() time.Time {
		return at
	}
}
