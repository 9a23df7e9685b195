package storage

import (
	"encoding/xml"
	"fmt"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

const missingFieldFormat = "Task's %s field is missing!"

type xmlTask struct {
	Name     *string  `xml:"name"`
	Date     *string  `xml:"date"`
	Priority *string  `xml:"priority"`
	Venue    *string  `xml:"venue"`
	Tags     []string `xml:"tagged"`
}

type xmlTaskList struct {
	XMLName xml.Name  `xml:"scheduleplanner"`
	Tasks   []xmlTask `xml:"tasks"`
}

type xmlWeek struct {
	StartDate *string `xml:"startOfWeekDate"`
	EndDate   *string `xml:"endOfWeekDate"`
	Label     *string `xml:"description"`
}

type xmlSemester struct {
	XMLName xml.Name  `xml:"rangeofweek"`
	Weeks   []xmlWeek `xml:"rangeOfWeeks"`
}

// EncodeTasks renders the task list as an indented XML document.
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	doc := xmlTaskList{Tasks: make([]xmlTask, 0, len(tasks))}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, xmlTask{
			Name:     ptr(t.Name),
			Date:     ptr(t.Date),
			Priority: ptr(t.Priority),
			Venue:    ptr(t.Venue),
			Tags:     t.Tags,
		})
	}
	return marshal(doc)
}

// DecodeTasks parses and validates a task document. Any missing or invalid
// field fails the whole document.
func DecodeTasks(raw []byte) ([]model.Task, error) {
	var doc xmlTaskList
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("xml unmarshal: %w", err)
	}
	out := make([]model.Task, 0, len(doc.Tasks))
	for i, rec := range doc.Tasks {
		t, err := rec.toModel()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (r xmlTask) toModel() (model.Task, error) {
	for _, f := range []struct {
		name string
		v    *string
	}{
		{"name", r.Name},
		{"date", r.Date},
		{"priority", r.Priority},
		{"venue", r.Venue},
	} {
		if f.v == nil {
			return model.Task{}, fmt.Errorf(missingFieldFormat, f.name)
		}
	}
	return model.NewTask(*r.Name, *r.Date, *r.Priority, *r.Venue, r.Tags)
}

func EncodeSemester(weeks model.Semester) ([]byte, error) {
	if err := weeks.Validate(); err != nil {
		return nil, err
	}
	doc := xmlSemester{Weeks: make([]xmlWeek, 0, len(weeks))}
	for _, w := range weeks {
		doc.Weeks = append(doc.Weeks, xmlWeek{
			StartDate: ptr(w.StartDate),
			EndDate:   ptr(w.EndDate),
			Label:     ptr(w.Label),
		})
	}
	return marshal(doc)
}

func DecodeSemester(raw []byte) (model.Semester, error) {
	var doc xmlSemester
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("xml unmarshal: %w", err)
	}
	out := make(model.Semester, 0, len(doc.Weeks))
	for i, rec := range doc.Weeks {
		if rec.StartDate == nil || rec.EndDate == nil || rec.Label == nil {
			return nil, fmt.Errorf("week %d: missing field", i+1)
		}
		out = append(out, model.SemesterWeek{
			StartDate: *rec.StartDate,
			EndDate:   *rec.EndDate,
			Label:     *rec.Label,
		})
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func marshal(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("xml marshal: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	return append(out, '\n'), nil
}

func ptr(s string) *string { return &s }
