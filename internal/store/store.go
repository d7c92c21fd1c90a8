// Package store reads and writes the todo and done files.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/tgienger/todocmd/internal/models"
)

// FileStore keeps both lists in plain text files
type FileStore struct {
	TodoPath string
	DonePath string
	Logger   *log.Logger
}

// New creates a store for the given files. A nil logger discards output.
func New(todoPath, donePath string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{TodoPath: todoPath, DonePath: donePath, Logger: logger}
}

// ReadTodo returns the content of the todo file.
func (s *FileStore) ReadTodo() (string, error) {
	return s.read(s.TodoPath)
}

// ReadDone returns the content of the done file.
func (s *FileStore) ReadDone() (string, error) {
	return s.read(s.DonePath)
}

// Write replaces both files with the rendered collections.
func (s *FileStore) Write(todo, done models.Collection) error {
	if err := s.write(s.TodoPath, todo); err != nil {
		return err
	}
	return s.write(s.DonePath, done)
}

// read treats a missing file as an empty list
func (s *FileStore) read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.Logger.Debug("list file does not exist yet", "path", path)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	s.Logger.Debug("read list file", "path", path, "bytes", len(data))
	return string(data), nil
}

func (s *FileStore) write(path string, c models.Collection) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := io.WriteString(f, c.String()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	s.Logger.Debug("wrote list file", "path", path, "entries", c.Len())
	return nil
}
