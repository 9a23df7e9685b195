package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

// XMLTaskStore keeps the task list in a single XML file.
type XMLTaskStore struct {
	path string
}

func NewXMLTaskStore(path string) (*XMLTaskStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: empty task file path")
	}
	return &XMLTaskStore{path: path}, nil
}

func (s *XMLTaskStore) Path() string { return s.path }

// LoadTasks returns an empty list when the file does not exist yet.
func (s *XMLTaskStore) LoadTasks(ctx context.Context) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []model.Task{}, nil
	}
	tasks, err := DecodeTasks(raw)
	if err != nil {
		return nil, &CorruptError{Source: s.path, Err: err}
	}
	return tasks, nil
}

// SaveTasks overwrites the whole file.
func (s *XMLTaskStore) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := EncodeTasks(tasks)
	if err != nil {
		return err
	}
	return writeFile(s.path, payload, true)
}

// XMLWeekStore keeps the semester table in a single XML file. Unlike the
// task file it must already exist when saving; EnsureSemester creates it.
type XMLWeekStore struct {
	path string
}

func NewXMLWeekStore(path string) (*XMLWeekStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: empty week file path")
	}
	return &XMLWeekStore{path: path}, nil
}

func (s *XMLWeekStore) Path() string { return s.path }

func (s *XMLWeekStore) LoadSemester(ctx context.Context) (model.Semester, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSemesterMissing, s.path)
		}
		return nil, fmt.Errorf("read week file: %w", err)
	}
	weeks, err := DecodeSemester(raw)
	if err != nil {
		return nil, &CorruptError{Source: s.path, Err: err}
	}
	return weeks, nil
}

func (s *XMLWeekStore) SaveSemester(ctx context.Context, weeks model.Semester) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSemesterMissing, s.path)
		}
		return fmt.Errorf("stat week file: %w", err)
	}
	payload, err := EncodeSemester(weeks)
	if err != nil {
		return err
	}
	return writeFile(s.path, payload, false)
}

// EnsureSemester writes the default semester when the file is absent.
func (s *XMLWeekStore) EnsureSemester(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat week file: %w", err)
	}
	payload, err := EncodeSemester(defaultSemester())
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFile(s.path, payload, true)
}

func writeFile(path string, payload []byte, mkdir bool) error {
	if mkdir {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
