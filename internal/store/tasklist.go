package store

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

var ErrTaskNotFound = errors.New("store: task not found")

// Predicate selects tasks for a View.
type Predicate func(model.Task) bool

// TaskList is the ordered, in-memory task collection. It is owned by a single
// dispatcher goroutine and does no locking.
type TaskList struct {
	tasks []model.Task
}

func NewTaskList(tasks []model.Task) *TaskList {
	return &TaskList{tasks: slices.Clone(tasks)}
}

func (l *TaskList) Add(t model.Task) {
	l.tasks = append(l.tasks, t)
}

// Delete removes the first task structurally equal to t.
func (l *TaskList) Delete(t model.Task) error {
	i := l.indexOf(t)
	if i < 0 {
		return ErrTaskNotFound
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return nil
}

// Update replaces the first task equal to old, keeping its position.
func (l *TaskList) Update(old, next model.Task) error {
	i := l.indexOf(old)
	if i < 0 {
		return ErrTaskNotFound
	}
	l.tasks[i] = next
	return nil
}

func (l *TaskList) Contains(t model.Task) bool {
	return l.indexOf(t) >= 0
}

func (l *TaskList) Clear() {
	l.tasks = nil
}

// Reset swaps the contents wholesale. Views built earlier stay valid.
func (l *TaskList) Reset(tasks []model.Task) {
	l.tasks = slices.Clone(tasks)
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy in stored order.
func (l *TaskList) Tasks() []model.Task {
	return slices.Clone(l.tasks)
}

// Filter returns a live view: it re-reads the list each time it is queried.
func (l *TaskList) Filter(pred Predicate) *View {
	if pred == nil {
		pred = All
	}
	return &View{list: l, pred: pred}
}

func (l *TaskList) indexOf(t model.Task) int {
	for i := range l.tasks {
		if l.tasks[i].Equal(t) {
			return i
		}
	}
	return -1
}

// View is a filtered, name-sorted window over a TaskList.
type View struct {
	list *TaskList
	pred Predicate
}

// Items evaluates the predicate against the current list contents and sorts
// the matches by name.
func (v *View) Items() []model.Task {
	out := make([]model.Task, 0, len(v.list.tasks))
	for _, t := range v.list.tasks {
		if v.pred(t) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, model.CompareByName)
	return out
}

// At resolves a 1-based display index.
func (v *View) At(index int) (model.Task, bool) {
	items := v.Items()
	if index < 1 || index > len(items) {
		return model.Task{}, false
	}
	return items[index-1], true
}

func (v *View) Len() int {
	return len(v.Items())
}

func All(model.Task) bool { return true }

// NameContainsKeywords matches when any whole word of the name equals any
// keyword, ignoring case.
func NameContainsKeywords(keywords []string) Predicate {
	return func(t model.Task) bool {
		words := strings.Fields(t.Name)
		for _, kw := range keywords {
			for _, w := range words {
				if strings.EqualFold(w, kw) {
					return true
				}
			}
		}
		return false
	}
}

func OnDate(day time.Time) Predicate {
	return func(t model.Task) bool { return t.OccursOn(day) }
}

func WithinDates(start, end time.Time) Predicate {
	return func(t model.Task) bool { return t.Within(start, end) }
}
