package model

import (
	"errors"
	"fmt"
	"time"
)

const (
	WeeksInSemester = 17
	// DefaultFirstMonday seeds the week file on first launch.
	DefaultFirstMonday = "010118"
	// LastYear is the final year a DDMMYY date can name.
	LastYear = 2099
)

const MessageSemesterOutOfRange = "Semester must end by 311299; pick an earlier first Monday"

var (
	ErrNotMonday       = errors.New("model: date is not a Monday")
	ErrInvalidSemester = errors.New("model: invalid semester table")
)

var weekLabels = [WeeksInSemester]string{
	"Week 1", "Week 2", "Week 3", "Week 4", "Week 5", "Week 6",
	"Recess Week",
	"Week 7", "Week 8", "Week 9", "Week 10", "Week 11", "Week 12", "Week 13",
	"Study Week",
	"Examination Week", "Examination Week",
}

// WeekLabel returns the fixed label for position i of a semester.
func WeekLabel(i int) string {
	if i < 0 || i >= WeeksInSemester {
		return ""
	}
	return weekLabels[i]
}

// SemesterWeek is one closed [StartDate, EndDate] window.
type SemesterWeek struct {
	StartDate string
	EndDate   string
	Label     string
}

type Semester []SemesterWeek

// ComputeRangeOfWeeks lays out the 17 weekly windows starting at firstMonday.
func ComputeRangeOfWeeks(firstMonday string) (Semester, error) {
	start, err := ParseDate(firstMonday)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: MessageDateConstraints}
	}
	if start.Weekday() != time.Monday {
		return nil, fmt.Errorf("%w: %s", ErrNotMonday, firstMonday)
	}
	if last := start.AddDate(0, 0, 7*(WeeksInSemester-1)+6); last.Year() > LastYear {
		return nil, &ValidationError{Field: "semester", Message: MessageSemesterOutOfRange}
	}
	out := make(Semester, WeeksInSemester)
	for i := range out {
		out[i] = SemesterWeek{
			StartDate: FormatDate(start.AddDate(0, 0, 7*i)),
			EndDate:   FormatDate(start.AddDate(0, 0, 7*i+6)),
			Label:     weekLabels[i],
		}
	}
	return out, nil
}

// IsWithinRange reports start <= ref <= end.
func IsWithinRange(ref, start, end time.Time) bool {
	return !ref.Before(start) && !ref.After(end)
}

// LabelForDate returns the label of the first window containing ref.
func LabelForDate(ref time.Time, weeks Semester) (string, bool) {
	i := weeks.WeekIndex(ref)
	if i < 0 {
		return "", false
	}
	return weeks[i].Label, true
}

// WeekIndex returns the position of the window containing ref, or -1.
// Rows whose dates do not parse are skipped.
func (s Semester) WeekIndex(ref time.Time) int {
	day := Day(ref)
	for i, w := range s {
		start, err := ParseDate(w.StartDate)
		if err != nil {
			continue
		}
		end, err := ParseDate(w.EndDate)
		if err != nil {
			continue
		}
		if IsWithinRange(day, start, end) {
			return i
		}
	}
	return -1
}

// Validate checks the row count, date well-formedness and the label sequence.
func (s Semester) Validate() error {
	if len(s) != WeeksInSemester {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidSemester, len(s), WeeksInSemester)
	}
	for i, w := range s {
		if !IsValidDate(w.StartDate) || !IsValidDate(w.EndDate) {
			return fmt.Errorf("%w: row %d has a malformed date", ErrInvalidSemester, i)
		}
		if w.Label != weekLabels[i] {
			return fmt.Errorf("%w: row %d label %q, want %q", ErrInvalidSemester, i, w.Label, weekLabels[i])
		}
	}
	return nil
}

// StartOfWeek returns the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := Day(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
