package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/scheduleplanner/internal/commands"
	"github.com/sandeepkv93/scheduleplanner/internal/model"
	"github.com/sandeepkv93/scheduleplanner/internal/storage"
	"github.com/sandeepkv93/scheduleplanner/internal/store"
)

func (p *Planner) handlers(ctx context.Context) commands.Handlers {
	return commands.Handlers{
		Add:      func(a commands.AddArgs) (commands.Result, error) { return p.add(ctx, a) },
		Edit:     func(a commands.EditArgs) (commands.Result, error) { return p.edit(ctx, a) },
		Delete:   func(a commands.DeleteArgs) (commands.Result, error) { return p.delete(ctx, a) },
		List:     p.list,
		ListDay:  p.listDay,
		ListWeek: p.listWeek,
		Find:     p.find,
		FirstDay: func(a commands.FirstDayArgs) (commands.Result, error) { return p.firstDay(ctx, a) },
		Clear:    func() (commands.Result, error) { return p.clear(ctx) },
		Help:     p.help,
	}
}

func (p *Planner) add(ctx context.Context, a commands.AddArgs) (commands.Result, error) {
	task, err := model.NewTask(a.Name, a.Date, a.Priority, a.Venue, a.Tags)
	if err != nil {
		return commands.Result{}, err
	}
	if p.tasks.Contains(task) {
		return commands.Result{}, userError(MessageDuplicateTask, nil)
	}
	if err := p.mutate(ctx, func() error {
		p.tasks.Add(task)
		return nil
	}); err != nil {
		return commands.Result{}, err
	}
	p.logger.Info("task added", "name", task.Name, "date", task.Date)
	return commands.Result{Message: fmt.Sprintf(MessageAddSuccess, task)}, nil
}

func (p *Planner) edit(ctx context.Context, a commands.EditArgs) (commands.Result, error) {
	old, ok := p.view.At(a.Index)
	if !ok {
		return commands.Result{}, userError(MessageInvalidIndex, nil)
	}
	name, date, priority, venue, tags := old.Name, old.Date, old.Priority, old.Venue, old.Tags
	if a.Name != nil {
		name = *a.Name
	}
	if a.Date != nil {
		date = *a.Date
	}
	if a.Priority != nil {
		priority = *a.Priority
	}
	if a.Venue != nil {
		venue = *a.Venue
	}
	if a.Tags != nil {
		tags = a.Tags
	}
	next, err := model.NewTask(name, date, priority, venue, tags)
	if err != nil {
		return commands.Result{}, err
	}
	if !next.Equal(old) && p.tasks.Contains(next) {
		return commands.Result{}, userError(MessageDuplicateTask, nil)
	}
	if err := p.mutate(ctx, func() error { return p.tasks.Update(old, next) }); err != nil {
		return commands.Result{}, err
	}
	p.logger.Info("task edited", "name", next.Name, "index", a.Index)
	return commands.Result{Message: fmt.Sprintf(MessageEditSuccess, next)}, nil
}

func (p *Planner) delete(ctx context.Context, a commands.DeleteArgs) (commands.Result, error) {
	target, ok := p.view.At(a.Index)
	if !ok {
		return commands.Result{}, userError(MessageInvalidIndex, nil)
	}
	if err := p.mutate(ctx, func() error { return p.tasks.Delete(target) }); err != nil {
		return commands.Result{}, err
	}
	p.logger.Info("task deleted", "name", target.Name, "index", a.Index)
	return commands.Result{Message: fmt.Sprintf(MessageDeleteSuccess, target)}, nil
}

// clear is the one write allowed over an unreadable task file; it replaces
// the file with an empty list.
func (p *Planner) clear(ctx context.Context) (commands.Result, error) {
	wasCorrupt := p.tasksCorrupt
	p.tasksCorrupt = false
	if err := p.mutate(ctx, func() error {
		p.tasks.Clear()
		return nil
	}); err != nil {
		p.tasksCorrupt = wasCorrupt
		return commands.Result{}, err
	}
	p.showAll()
	p.logger.Info("planner cleared")
	return commands.Result{Message: MessageClearSuccess}, nil
}

func (p *Planner) list() (commands.Result, error) {
	p.showAll()
	return commands.Result{Message: MessageListAll}, nil
}

func (p *Planner) listDay() (commands.Result, error) {
	n := p.show("today", store.OnDate(p.now()))
	return commands.Result{Message: fmt.Sprintf(MessageTasksListed, n)}, nil
}

func (p *Planner) listWeek() (commands.Result, error) {
	start := model.StartOfWeek(p.now())
	n := p.show("this week", store.WithinDates(start, start.AddDate(0, 0, 6)))
	return commands.Result{Message: fmt.Sprintf(MessageTasksListed, n)}, nil
}

func (p *Planner) find(a commands.FindArgs) (commands.Result, error) {
	n := p.show("search", store.NameContainsKeywords(a.Keywords))
	return commands.Result{Message: fmt.Sprintf(MessageTasksListed, n)}, nil
}

func (p *Planner) help() (commands.Result, error) {
	return commands.Result{Message: MessageHelpOpened, Help: true}, nil
}

// firstDay checks the date form before the weekday so that garbage input
// never reports "not a Monday".
func (p *Planner) firstDay(ctx context.Context, a commands.FirstDayArgs) (commands.Result, error) {
	if !model.IsValidDate(a.Date) {
		return commands.Result{}, userError(MessageInvalidDate, model.ErrInvalidDate)
	}
	weeks, err := model.ComputeRangeOfWeeks(a.Date)
	if err != nil {
		if errors.Is(err, model.ErrNotMonday) {
			return commands.Result{}, userError(MessageNotMonday, err)
		}
		var ve *model.ValidationError
		if errors.As(err, &ve) && ve.Field == "semester" {
			return commands.Result{}, userError(ve.Message, err)
		}
		return commands.Result{}, userError(MessageInvalidDate, err)
	}
	if err := p.weekRepo.SaveSemester(ctx, weeks); err != nil {
		if errors.Is(err, storage.ErrSemesterMissing) {
			return commands.Result{}, userError(MessageFileMissing, err)
		}
		p.logger.Error("save semester failed", "err", err)
		return commands.Result{}, userError(MessageSaveFailed, err)
	}
	p.semester = weeks
	p.logger.Info("semester saved", "first_monday", a.Date)

	msg := MessageFirstDaySuccess
	if label, ok := model.LabelForDate(p.now(), weeks); ok {
		msg += "\n" + fmt.Sprintf(MessageCurrentWeek, label)
	}
	return commands.Result{Message: msg}, nil
}
