// Package planner applies parsed commands to the task list and semester table
// and persists every change.
package planner

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/scheduleplanner/internal/commands"
	"github.com/sandeepkv93/scheduleplanner/internal/logging"
	"github.com/sandeepkv93/scheduleplanner/internal/model"
	"github.com/sandeepkv93/scheduleplanner/internal/storage"
	"github.com/sandeepkv93/scheduleplanner/internal/store"
)

type Option func(*Planner)

func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

type Planner struct {
	mu       sync.RWMutex
	tasks    *store.TaskList
	view     *store.View
	viewName string
	taskRepo storage.TaskRepository
	weekRepo storage.SemesterRepository
	semester model.Semester
	now      func() time.Time
	logger   *log.Logger
	warnings []error
	// tasksCorrupt blocks every write but clear, so an unreadable task file
	// is not silently replaced.
	tasksCorrupt bool
}

// Snapshot is a consistent read of what the UI shows.
type Snapshot struct {
	Title     string
	ViewName  string
	Tasks     []model.Task
	Total     int
	WeekIndex int
	WeekLabel string
	Semester  model.Semester
}

// New loads stored tasks and makes sure a semester table exists. Data that
// cannot be read does not stop startup; it is reported through Warnings.
func New(ctx context.Context, tasks storage.TaskRepository, weeks storage.SemesterRepository, opts ...Option) (*Planner, error) {
	if tasks == nil || weeks == nil {
		return nil, errors.New("planner: repositories are required")
	}
	p := &Planner{
		taskRepo: tasks,
		weekRepo: weeks,
		now:      time.Now,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}

	loaded, err := tasks.LoadTasks(ctx)
	if err != nil {
		var corrupt *storage.CorruptError
		if !errors.As(err, &corrupt) {
			return nil, fmt.Errorf("load tasks: %w", err)
		}
		p.logger.Warn("task data unreadable, writes disabled until clear", "err", err)
		p.warnings = append(p.warnings, userError(MessageDataUnconverted, err))
		p.tasksCorrupt = true
		loaded = nil
	}
	p.tasks = store.NewTaskList(loaded)
	p.showAll()

	if err := weeks.EnsureSemester(ctx); err != nil {
		p.logger.Warn("could not seed semester table", "err", err)
	}
	sem, err := weeks.LoadSemester(ctx)
	if err != nil {
		p.logger.Warn("semester table unavailable", "err", err)
		p.warnings = append(p.warnings, semesterLoadError(err))
	} else {
		p.semester = sem
	}
	p.logger.Info("planner ready", "tasks", p.tasks.Len(), "semester_weeks", len(p.semester))
	return p, nil
}

func semesterLoadError(err error) *Error {
	var corrupt *storage.CorruptError
	switch {
	case errors.As(err, &corrupt):
		return userError(MessageDataUnconverted, err)
	case errors.Is(err, storage.ErrSemesterMissing):
		return userError(MessageFileMissing, err)
	default:
		return userError(MessageSemesterUnreadable, err)
	}
}

// Warnings lists problems found while loading, as user-facing errors.
func (p *Planner) Warnings() []error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.warnings)
}

// Execute parses and runs one command line. Errors carry user-facing text;
// see UserMessage.
func (p *Planner) Execute(ctx context.Context, raw string) (commands.Result, error) {
	cmd, err := commands.Parse(raw)
	if err != nil {
		p.logger.Debug("rejected input", "input", raw, "err", err)
		return commands.Result{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	res, err := commands.Execute(cmd, p.handlers(ctx))
	if err != nil {
		p.logger.Warn("command failed", "command", cmd.Type, "err", err)
		return commands.Result{}, err
	}
	p.logger.Debug("command done", "command", cmd.Type, "visible", p.view.Len())
	return res, nil
}

func (p *Planner) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := Snapshot{
		Title:     p.titleLocked(),
		ViewName:  p.viewName,
		Tasks:     p.view.Items(),
		Total:     p.tasks.Len(),
		WeekIndex: p.semester.WeekIndex(p.now()),
		Semester:  slices.Clone(p.semester),
	}
	if s.WeekIndex >= 0 {
		s.WeekLabel = p.semester[s.WeekIndex].Label
	}
	return s
}

// Title is "Schedule Planner - <week label>" while today is inside the
// semester and "Schedule Planner" otherwise.
func (p *Planner) Title() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.titleLocked()
}

func (p *Planner) VisibleTasks() []model.Task {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view.Items()
}

func (p *Planner) Semester() model.Semester {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.semester)
}

func (p *Planner) titleLocked() string {
	if label, ok := model.LabelForDate(p.now(), p.semester); ok {
		return DefaultTitle + " - " + label
	}
	return DefaultTitle
}

func (p *Planner) showAll() {
	p.view = p.tasks.Filter(store.All)
	p.viewName = "all"
}

func (p *Planner) show(name string, pred store.Predicate) int {
	p.view = p.tasks.Filter(pred)
	p.viewName = name
	return p.view.Len()
}

// mutate applies change and saves the whole list, restoring the previous
// contents when the save fails.
func (p *Planner) mutate(ctx context.Context, change func() error) error {
	if p.tasksCorrupt {
		return userError(MessageTaskFileLocked, nil)
	}
	before := p.tasks.Tasks()
	if err := change(); err != nil {
		return err
	}
	if err := p.taskRepo.SaveTasks(ctx, p.tasks.Tasks()); err != nil {
		p.tasks.Reset(before)
		p.logger.Error("save tasks failed", "err", err)
		return userError(MessageSaveFailed, err)
	}
	return nil
}
