package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	MessageNameConstraints     = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessageVenueConstraints    = "Venue can take any values, and it should not be blank"
	MessageTagConstraints      = "Tags names should be alphanumeric"
	MessagePriorityConstraints = "Priority is required"
)

var (
	nameRegex  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	venueRegex = regexp.MustCompile(`^\S.*$`)
	tagRegex   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// ValidationError reports a malformed task field. It is returned before any
// state is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: invalid %s: %s", e.Field, e.Message)
}

func IsValidName(s string) bool  { return nameRegex.MatchString(s) }
func IsValidVenue(s string) bool { return venueRegex.MatchString(s) }
func IsValidTag(s string) bool   { return tagRegex.MatchString(s) }

// Task is immutable once built; edits construct a replacement.
type Task struct {
	Name     string
	Date     string
	Priority string
	Venue    string
	Tags     []string
}

// NewTask validates every field and returns a task with a de-duplicated,
// sorted tag set.
func NewTask(name, date, priority, venue string, tags []string) (Task, error) {
	t := Task{
		Name:     name,
		Date:     date,
		Priority: priority,
		Venue:    venue,
		Tags:     normalizeTags(tags),
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t Task) Validate() error {
	if !IsValidName(t.Name) {
		return &ValidationError{Field: "name", Message: MessageNameConstraints}
	}
	if !IsValidDate(t.Date) {
		return &ValidationError{Field: "date", Message: MessageDateConstraints}
	}
	if strings.TrimSpace(t.Priority) == "" {
		return &ValidationError{Field: "priority", Message: MessagePriorityConstraints}
	}
	if !IsValidVenue(t.Venue) {
		return &ValidationError{Field: "venue", Message: MessageVenueConstraints}
	}
	for _, tag := range t.Tags {
		if !IsValidTag(tag) {
			return &ValidationError{Field: "tag", Message: fmt.Sprintf("%s: %q", MessageTagConstraints, tag)}
		}
	}
	return nil
}

// Equal compares all fields; tags are compared as a set.
func (t Task) Equal(o Task) bool {
	if t.Name != o.Name || t.Date != o.Date || t.Priority != o.Priority || t.Venue != o.Venue {
		return false
	}
	a, b := normalizeTags(t.Tags), normalizeTags(o.Tags)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Day returns the task's date. Tasks built through NewTask always parse.
func (t Task) Day() (time.Time, bool) {
	d, err := ParseDate(t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func (t Task) OccursOn(day time.Time) bool {
	d, ok := t.Day()
	return ok && d.Equal(Day(day))
}

func (t Task) Within(start, end time.Time) bool {
	d, ok := t.Day()
	return ok && IsWithinRange(d, Day(start), Day(end))
}

func (t Task) String() string {
	out := fmt.Sprintf("%s Date: %s Priority: %s Venue: %s", t.Name, t.Date, t.Priority, t.Venue)
	if len(t.Tags) > 0 {
		out += " Tags: [" + strings.Join(t.Tags, "][") + "]"
	}
	return out
}

// CompareByName orders tasks by byte-wise name comparison.
func CompareByName(a, b Task) int {
	return strings.Compare(a.Name, b.Name)
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
