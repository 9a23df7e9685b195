package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

const sqliteSource = "sqlite"

// SQLiteRepository implements both TaskRepository and SemesterRepository.
// Saves rewrite the whole table inside one transaction.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens the database at path, creating its directory, and applies
// migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps PRAGMA foreign_keys in effect for every statement.
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	tags, err := r.loadTags(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, date, priority, venue
		FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		var (
			id                          int64
			name, date, priority, venue string
		)
		if err := rows.Scan(&id, &name, &date, &priority, &venue); err != nil {
			return nil, err
		}
		t, err := model.NewTask(name, date, priority, venue, tags[id])
		if err != nil {
			return nil, &CorruptError{Source: sqliteSource, Err: fmt.Errorf("task %d: %w", id, err)}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) loadTags(ctx context.Context) (map[int64][]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT task_id, tag FROM task_tags ORDER BY task_id, tag`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, err
		}
		out[id] = append(out[id], tag)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}
		for i, t := range tasks {
			res, err := tx.ExecContext(ctx, `
				INSERT INTO tasks (position, name, date, priority, venue)
				VALUES (?, ?, ?, ?, ?)`,
				i, t.Name, t.Date, t.Priority, t.Venue,
			)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for _, tag := range t.Tags {
				if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO task_tags (task_id, tag) VALUES (?, ?)`, id, tag); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) LoadSemester(ctx context.Context) (model.Semester, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT start_date, end_date, label
		FROM semester_weeks ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(model.Semester, 0, model.WeeksInSemester)
	for rows.Next() {
		var w model.SemesterWeek
		if err := rows.Scan(&w.StartDate, &w.EndDate, &w.Label); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrSemesterMissing
	}
	if err := out.Validate(); err != nil {
		return nil, &CorruptError{Source: sqliteSource, Err: err}
	}
	return out, nil
}

// SaveSemester requires a table to have been seeded, mirroring the XML store.
func (r *SQLiteRepository) SaveSemester(ctx context.Context, weeks model.Semester) error {
	if err := weeks.Validate(); err != nil {
		return err
	}
	n, err := r.countWeeks(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSemesterMissing
	}
	return r.writeSemester(ctx, weeks)
}

func (r *SQLiteRepository) EnsureSemester(ctx context.Context) error {
	n, err := r.countWeeks(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return r.writeSemester(ctx, defaultSemester())
}

func (r *SQLiteRepository) writeSemester(ctx context.Context, weeks model.Semester) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM semester_weeks`); err != nil {
			return err
		}
		for i, w := range weeks {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO semester_weeks (position, start_date, end_date, label)
				VALUES (?, ?, ?, ?)`,
				i, w.StartDate, w.EndDate, w.Label,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) countWeeks(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM semester_weeks`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQLiteRepository) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
