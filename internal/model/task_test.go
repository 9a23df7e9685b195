package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewTaskSuccess(t *testing.T) {
	task, err := NewTask("Submit report", "130818", "high", "COM1 level 2", []string{"cs2103", "cs2103", "admin"})
	if err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
	if len(task.Tags) != 2 || task.Tags[0] != "admin" || task.Tags[1] != "cs2103" {
		t.Fatalf("unexpected normalized tags: %v", task.Tags)
	}
}

func TestNewTaskInvalidFields(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		priority string
		venue    string
		tags     []string
		field    string
	}{
		{"R@chel", "130818", "1", "home", nil, "name"},
		{" leading", "130818", "1", "home", nil, "name"},
		{"", "130818", "1", "home", nil, "name"},
		{"Valid", "911a", "1", "home", nil, "date"},
		{"Valid", "310412", "1", "home", nil, "date"},
		{"Valid", "130818", "  ", "home", nil, "priority"},
		{"Valid", "130818", "1", " ", nil, "venue"},
		{"Valid", "130818", "1", "", nil, "venue"},
		{"Valid", "130818", "1", "home", []string{"#friend"}, "tag"},
	}
	for _, tc := range cases {
		_, err := NewTask(tc.name, tc.date, tc.priority, tc.venue, tc.tags)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("NewTask(%q,%q,%q,%q,%v): expected ValidationError, got %v", tc.name, tc.date, tc.priority, tc.venue, tc.tags, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("NewTask(%q,...): field = %q, want %q", tc.name, ve.Field, tc.field)
		}
	}
}

func TestTaskEqualTreatsTagsAsSet(t *testing.T) {
	a := Task{Name: "Lab", Date: "130818", Priority: "1", Venue: "lt", Tags: []string{"x", "y"}}
	b := Task{Name: "Lab", Date: "130818", Priority: "1", Venue: "lt", Tags: []string{"y", "x", "x"}}
	if !a.Equal(b) {
		t.Fatal("expected tasks with same tag set to be equal")
	}
	b.Venue = "LT"
	if a.Equal(b) {
		t.Fatal("expected venue difference to break equality")
	}
}

func TestCompareByNameIsCaseSensitive(t *testing.T) {
	upper := Task{Name: "Zeta"}
	lower := Task{Name: "alpha"}
	if CompareByName(upper, lower) >= 0 {
		t.Fatal("expected uppercase to sort before lowercase")
	}
	if CompareByName(lower, lower) != 0 {
		t.Fatal("expected equal names to compare 0")
	}
}

func TestTaskOccursOnAndWithin(t *testing.T) {
	task := Task{Name: "Lab", Date: "150818", Priority: "1", Venue: "lt"}
	day := time.Date(2018, 8, 15, 21, 30, 0, 0, time.UTC)
	if !task.OccursOn(day) {
		t.Fatal("expected task to occur on its own date regardless of clock time")
	}
	if task.OccursOn(day.AddDate(0, 0, 1)) {
		t.Fatal("did not expect task on following day")
	}
	monday := time.Date(2018, 8, 13, 0, 0, 0, 0, time.UTC)
	if !task.Within(monday, monday.AddDate(0, 0, 6)) {
		t.Fatal("expected task within its week")
	}
	if task.Within(monday.AddDate(0, 0, 7), monday.AddDate(0, 0, 13)) {
		t.Fatal("did not expect task within following week")
	}
}
