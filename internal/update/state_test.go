package update

import "testing"

func TestHistoryBrowse(t *testing.T) {
	h := NewHistory(10)
	h.Add("list")
	h.Add("find lab")
	h.Add("find lab")
	h.Add("")

	if got := h.Entries(); len(got) != 2 {
		t.Fatalf("expected repeats and blanks skipped, got %v", got)
	}

	if v, ok := h.Prev("add n/dra"); !ok || v != "find lab" {
		t.Fatalf("prev = %q, %v", v, ok)
	}
	if v, _ := h.Prev(""); v != "list" {
		t.Fatalf("second prev = %q", v)
	}
	if v, _ := h.Prev(""); v != "list" {
		t.Fatalf("prev at oldest should stay, got %q", v)
	}
	if v, _ := h.Next(); v != "find lab" {
		t.Fatalf("next = %q", v)
	}
	if v, ok := h.Next(); !ok || v != "add n/dra" {
		t.Fatalf("expected draft restored, got %q, %v", v, ok)
	}
	if _, ok := h.Next(); ok {
		t.Fatal("expected next past draft to report nothing")
	}
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	got := h.Entries()
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("expected oldest dropped, got %v", got)
	}
	empty := NewHistory(3)
	if _, ok := empty.Prev("x"); ok {
		t.Fatal("expected empty history to report nothing")
	}
}
