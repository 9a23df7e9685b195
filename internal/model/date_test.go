package model

import (
	"errors"
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	invalid := []string{
		"", " ", "91", "phone", "9011p0", "9312 1",
		"441112", // day 44
		"141312", // month 13
		"001112", // day 0
		"210012", // month 0
		"310412", // april has 30 days
		"290219", // 2019 is not a leap year
		"1308181",
	}
	for _, s := range invalid {
		if IsValidDate(s) {
			t.Fatalf("expected %q invalid", s)
		}
	}

	valid := []string{"280222", "290220", "310112", "290200", "311299"}
	for _, s := range valid {
		if !IsValidDate(s) {
			t.Fatalf("expected %q valid", s)
		}
	}
}

func TestParseDateErrorWraps(t *testing.T) {
	_, err := ParseDate("3104aa")
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("090218")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if d.Year() != 2018 || d.Month() != time.February || d.Day() != 9 {
		t.Fatalf("unexpected parsed date: %s", d)
	}
	if got := FormatDate(d); got != "090218" {
		t.Fatalf("format = %q, want 090218", got)
	}
}

func TestIsMonday(t *testing.T) {
	for _, s := range []string{"130818", "200818", "010118"} {
		if !IsMonday(s) {
			t.Fatalf("expected %q to be a Monday", s)
		}
	}
	for _, s := range []string{"140818", "150818", "160818", "170818", "180818", "190818", "bad"} {
		if IsMonday(s) {
			t.Fatalf("did not expect %q to be a Monday", s)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	sunday := time.Date(2018, 8, 19, 15, 0, 0, 0, time.UTC)
	if got := FormatDate(StartOfWeek(sunday)); got != "130818" {
		t.Fatalf("start of week for Sunday = %s, want 130818", got)
	}
	monday := time.Date(2018, 8, 13, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(StartOfWeek(monday)); got != "130818" {
		t.Fatalf("start of week for Monday = %s, want 130818", got)
	}
}
