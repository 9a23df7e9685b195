package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

func sampleTasks(t *testing.T) []model.Task {
	t.Helper()
	a, err := model.NewTask("Submit report", "130818", "high", "COM1 level 2", []string{"cs2103", "admin"})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	b, err := model.NewTask("Gym", "290220", "low", "UTown", nil)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	return []model.Task{a, b}
}

func TestXMLTaskStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "scheduleplanner.xml")
	s, err := NewXMLTaskStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	empty, err := s.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list for missing file, got %v", empty)
	}

	tasks := sampleTasks(t)
	if err := s.SaveTasks(ctx, tasks); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(got))
	}
	for i := range tasks {
		if !got[i].Equal(tasks[i]) {
			t.Fatalf("task %d = %+v, want %+v", i, got[i], tasks[i])
		}
	}

	if err := s.SaveTasks(ctx, tasks[:1]); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = s.LoadTasks(ctx)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected full overwrite to 1 task, got %v (%v)", got, err)
	}
}

func TestXMLTaskStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"garbage":       "not xml at all <",
		"missing venue": `<scheduleplanner><tasks><name>Gym</name><date>130818</date><priority>1</priority></tasks></scheduleplanner>`,
		"invalid name":  `<scheduleplanner><tasks><name>R@chel</name><date>130818</date><priority>1</priority><venue>x</venue></tasks></scheduleplanner>`,
		"invalid tag":   `<scheduleplanner><tasks><name>Gym</name><date>130818</date><priority>1</priority><venue>x</venue><tagged>#friend</tagged></tasks></scheduleplanner>`,
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "tasks.xml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		s, _ := NewXMLTaskStore(path)
		_, err := s.LoadTasks(ctx)
		var ce *CorruptError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: expected CorruptError, got %v", name, err)
		}
	}
}

func TestDecodeTasksMissingFieldMessage(t *testing.T) {
	_, err := DecodeTasks([]byte(`<scheduleplanner><tasks><date>130818</date><priority>1</priority><venue>x</venue></tasks></scheduleplanner>`))
	if err == nil || !strings.Contains(err.Error(), "Task's name field is missing!") {
		t.Fatalf("expected missing name message, got %v", err)
	}
}

func TestXMLWeekStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rangeofweek.xml")
	s, err := NewXMLWeekStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	weeks, err := model.ComputeRangeOfWeeks("130818")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if err := s.SaveSemester(ctx, weeks); !errors.Is(err, ErrSemesterMissing) {
		t.Fatalf("expected ErrSemesterMissing before file exists, got %v", err)
	}
	if _, err := s.LoadSemester(ctx); !errors.Is(err, ErrSemesterMissing) {
		t.Fatalf("expected ErrSemesterMissing on load, got %v", err)
	}

	if err := s.EnsureSemester(ctx); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	seeded, err := s.LoadSemester(ctx)
	if err != nil {
		t.Fatalf("load seeded: %v", err)
	}
	if seeded[0].StartDate != model.DefaultFirstMonday {
		t.Fatalf("expected default first monday, got %+v", seeded[0])
	}

	if err := s.SaveSemester(ctx, weeks); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadSemester(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := range weeks {
		if got[i] != weeks[i] {
			t.Fatalf("week %d = %+v, want %+v", i, got[i], weeks[i])
		}
	}

	if err := s.EnsureSemester(ctx); err != nil {
		t.Fatalf("ensure on existing file: %v", err)
	}
	again, err := s.LoadSemester(ctx)
	if err != nil || again[0] != weeks[0] {
		t.Fatalf("ensure must not overwrite existing table, got %+v (%v)", again, err)
	}
}

func TestXMLWeekStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	weeks, err := model.ComputeRangeOfWeeks("130818")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	full, err := EncodeSemester(weeks)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	truncated := strings.Replace(string(full), "<description>Study Week</description>", "", 1)

	for name, body := range map[string]string{
		"empty":         "",
		"garbage":       "<<<",
		"missing label": truncated,
		"too few rows":  `<rangeofweek><rangeOfWeeks><startOfWeekDate>130818</startOfWeekDate><endOfWeekDate>190818</endOfWeekDate><description>Week 1</description></rangeOfWeeks></rangeofweek>`,
	} {
		path := filepath.Join(t.TempDir(), "rangeofweek.xml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		s, _ := NewXMLWeekStore(path)
		_, err := s.LoadSemester(ctx)
		var ce *CorruptError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: expected CorruptError, got %v", name, err)
		}
	}
}

func TestEncodeSemesterRejectsMalformedTable(t *testing.T) {
	if _, err := EncodeSemester(model.Semester{}); !errors.Is(err, model.ErrInvalidSemester) {
		t.Fatalf("expected ErrInvalidSemester, got %v", err)
	}
}

func TestNewStoresRejectEmptyPath(t *testing.T) {
	if _, err := NewXMLTaskStore("  "); err == nil {
		t.Fatal("expected error for empty task path")
	}
	if _, err := NewXMLWeekStore(""); err == nil {
		t.Fatal("expected error for empty week path")
	}
}
