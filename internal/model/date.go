package model

import (
	"errors"
	"fmt"
	"time"
)

// DateLayoutLen is the width of the DDMMYY encoding used everywhere a date is
// stored or typed.
const DateLayoutLen = 6

const MessageDateConstraints = "Date should be in ddmmyy format and be a real calendar day, e.g. 130818"

var ErrInvalidDate = errors.New("model: invalid date")

// IsValidDate reports whether s is a DDMMYY string naming a real calendar day
// in the years 2000-2099.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate converts a DDMMYY string into midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	if len(s) != DateLayoutLen {
		return time.Time{}, fmt.Errorf("%w: %q: want %d digits", ErrInvalidDate, s, DateLayoutLen)
	}
	var parts [3]int
	for i := 0; i < 3; i++ {
		hi, lo := s[2*i], s[2*i+1]
		if !isDigit(hi) || !isDigit(lo) {
			return time.Time{}, fmt.Errorf("%w: %q: non-digit character", ErrInvalidDate, s)
		}
		parts[i] = int(hi-'0')*10 + int(lo-'0')
	}
	day, month, year := parts[0], parts[1], 2000+parts[2]
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %q: month %d", ErrInvalidDate, s, month)
	}
	if day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, fmt.Errorf("%w: %q: day %d", ErrInvalidDate, s, day)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders t as DDMMYY. Only the last two digits of the year
// survive, so callers keep dates within 2000-2099.
func FormatDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%02d%02d%02d", d, int(m), y%100)
}

// IsMonday reports whether s is a valid date falling on a Monday.
func IsMonday(s string) bool {
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Monday
}

// Day truncates t to midnight UTC of its calendar day in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
