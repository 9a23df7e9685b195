package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

// ErrSemesterMissing means the semester backing store was expected to exist
// but does not.
var ErrSemesterMissing = errors.New("storage: semester data missing")

// CorruptError reports stored data that could not be converted back into
// domain values.
type CorruptError struct {
	Source string
	Err    error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("storage: corrupt data in %s: %v", e.Source, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// TaskRepository persists the whole task list at once.
type TaskRepository interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}

// SemesterRepository persists the 17-week table.
type SemesterRepository interface {
	LoadSemester(ctx context.Context) (model.Semester, error)
	SaveSemester(ctx context.Context, weeks model.Semester) error
	// EnsureSemester seeds a default table when none has been stored yet.
	EnsureSemester(ctx context.Context) error
}

func defaultSemester() model.Semester {
	weeks, err := model.ComputeRangeOfWeeks(model.DefaultFirstMonday)
	if err != nil {
		panic(fmt.Sprintf("storage: default semester: %v", err))
	}
	return weeks
}
