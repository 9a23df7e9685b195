package update

import (
	"strings"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

// weekFraction is how far through the semester week index i is, counting the
// current week as done.
func weekFraction(i int) float64 {
	if i < 0 {
		return 0
	}
	f := float64(i+1) / float64(model.WeeksInSemester)
	if f > 1 {
		return 1
	}
	return f
}

func commandWord(raw string) string {
	if fields := strings.Fields(raw); len(fields) > 0 {
		return fields[0]
	}
	return "command"
}
