package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"github.com/GustavoCaso/expense-tracker/internal/logger"
	"github.com/GustavoCaso/expense-tracker/internal/storage"
)

var (
	ErrInvalidID          = errors.New("invalid ID")
	ErrInvalidDescription = errors.New("invalid description")
)

// Store is the persistence the Tracker reads from and writes to.
type Store interface {
	Read() ([]storage.Expense, error)
	Write(expenses []storage.Expense) error
}

type Tracker struct {
	store  Store
	logger *logger.Logger
	now    func() time.Time
}

type Option func(*Tracker)

// WithClock sets the function used to timestamp new expenses.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(store Store, logger *logger.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		store:  store,
		logger: logger,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Add appends a new expense and returns a confirmation message carrying
// the assigned ID.
func (t *Tracker) Add(amount int, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", ErrInvalidDescription
	}

	expenses, err := t.store.Read()
	if err != nil {
		return "", err
	}

	id := nextID(expenses)
	expenses = append(expenses, storage.Expense{
		ID:          id,
		Amount:      amount,
		Description: description,
		Date:        t.now().UTC().Format(storage.DateLayout),
	})

	if err = t.store.Write(expenses); err != nil {
		return "", err
	}

	t.logger.Debug("Expense added", "id", id, "amount", amount)

	return fmt.Sprintf("Expense added successfully (ID: %d)", id), nil
}

// Delete removes the expense with the given ID.
func (t *Tracker) Delete(id int) (string, error) {
	if id == 0 {
		return "", ErrInvalidID
	}

	expenses, err := t.store.Read()
	if err != nil {
		return "", err
	}

	index := slices.IndexFunc(expenses, func(e storage.Expense) bool {
		return e.ID == id
	})
	if index == -1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	expenses = slices.Delete(expenses, index, index+1)

	if err = t.store.Write(expenses); err != nil {
		return "", err
	}

	t.logger.Debug("Expense deleted", "id", id)

	return "Expense deleted successfully", nil
}

// Expenses returns every stored expense in insertion order.
func (t *Tracker) Expenses() ([]storage.Expense, error) {
	return t.store.Read()
}

func nextID(expenses []storage.Expense) int {
	highest := 0
	for _, e := range expenses {
		if e.ID > highest {
			highest = e.ID
		}
	}

	return highest + 1
}
