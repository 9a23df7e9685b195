package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "planner-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestSQLiteTaskSaveAndLoad(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	empty, err := repo.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no tasks, got %v", empty)
	}

	tasks := sampleTasks(t)
	if err := repo.SaveTasks(ctx, tasks); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	got, err := repo.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(tasks[0]) || !got[1].Equal(tasks[1]) {
		t.Fatalf("unexpected tasks after load: %#v", got)
	}

	if err := repo.SaveTasks(ctx, tasks[1:]); err != nil {
		t.Fatalf("rewrite tasks: %v", err)
	}
	got, err = repo.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load after rewrite: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Gym" {
		t.Fatalf("expected full rewrite, got %#v", got)
	}
}

func TestSQLiteCorruptTaskRow(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	if _, err := repo.db.ExecContext(ctx, `
		INSERT INTO tasks (position, name, date, priority, venue) VALUES (0, 'R@chel', '130818', '1', 'x')`); err != nil {
		t.Fatalf("seed bad row: %v", err)
	}
	_, err := repo.LoadTasks(ctx)
	var ce *CorruptError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CorruptError, got %v", err)
	}
}

func TestSQLiteSemesterLifecycle(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	weeks, err := model.ComputeRangeOfWeeks("130818")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if err := repo.SaveSemester(ctx, weeks); !errors.Is(err, ErrSemesterMissing) {
		t.Fatalf("expected ErrSemesterMissing before seeding, got %v", err)
	}
	if _, err := repo.LoadSemester(ctx); !errors.Is(err, ErrSemesterMissing) {
		t.Fatalf("expected ErrSemesterMissing on load, got %v", err)
	}

	if err := repo.EnsureSemester(ctx); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := repo.SaveSemester(ctx, weeks); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.LoadSemester(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != model.WeeksInSemester || got[16] != weeks[16] {
		t.Fatalf("unexpected semester: %#v", got)
	}

	if _, err := repo.db.ExecContext(ctx, `UPDATE semester_weeks SET label = 'Week 99' WHERE position = 3`); err != nil {
		t.Fatalf("corrupt label: %v", err)
	}
	_, err = repo.LoadSemester(ctx)
	var ce *CorruptError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CorruptError, got %v", err)
	}
}
