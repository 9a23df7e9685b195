package update

// History remembers submitted command lines for up/down recall. The line
// being typed before browsing started is kept as a draft and restored when
// browsing walks past the newest entry.
type History struct {
	entries []string
	limit   int
	cursor  int
	draft   string
}

func NewHistory(limit int) History {
	if limit <= 0 {
		limit = 1
	}
	return History{limit: limit}
}

// Add records line and ends any browsing. Blank lines and immediate repeats
// are not stored.
func (h *History) Add(line string) {
	defer h.reset()
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = h.entries[over:]
	}
}

// Prev steps back one entry. current is saved as the draft on the first step.
func (h *History) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps forward; past the newest entry it returns the draft.
func (h *History) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) reset() {
	h.cursor = len(h.entries)
	h.draft = ""
}
