package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GustavoCaso/expense-tracker/internal/logger"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// DateLayout is the timestamp format persisted in the date field.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

type Expense struct {
	ID          int    `json:"id"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Day returns the YYYY-MM-DD portion of the expense timestamp.
func (e Expense) Day() string {
	if len(e.Date) < len("2006-01-02") {
		return e.Date
	}
	return e.Date[:len("2006-01-02")]
}

type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unreadable store %s: %s", e.Path, e.Err.Error())
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unwritable store %s: %s", e.Path, e.Err.Error())
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Store persists the whole expense list as a single JSON document.
type Store struct {
	path   string
	logger *logger.Logger
}

// New returns a Store backed by path. Relative paths are resolved against
// the current working directory once, here.
func New(path string, logger *logger.Logger) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve store path %s: %w", path, err)
	}

	return &Store{path: abs, logger: logger}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Read returns every stored expense in insertion order. A missing file is
// created holding an empty list.
func (s *Store) Read() ([]Expense, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("Store not found, creating an empty one", "path", s.path)

		if err = s.Write(nil); err != nil {
			return nil, err
		}
		return []Expense{}, nil
	}
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debug("Store is blank", "path", s.path)
		return []Expense{}, nil
	}

	var expenses []Expense
	if err = json.Unmarshal(data, &expenses); err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}

	if expenses == nil {
		expenses = []Expense{}
	}

	return expenses, nil
}

// Write replaces the store content with expenses. The parent directory is
// created when it is missing.
func (s *Store) Write(expenses []Expense) error {
	if expenses == nil {
		expenses = []Expense{}
	}

	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	err = s.replace(data)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("Creating store directory", "dir", filepath.Dir(s.path))

		if mkdirErr := os.MkdirAll(filepath.Dir(s.path), dirPerm); mkdirErr != nil {
			return &WriteError{Path: s.path, Err: mkdirErr}
		}
		err = s.replace(data)
	}
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	s.logger.Debug("Store written", "path", s.path, "expenses", len(expenses))

	return nil
}

// replace writes data to a temporary sibling file and renames it over the
// store so readers never observe a partial document.
func (s *Store) replace(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err = os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
