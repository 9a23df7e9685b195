package update

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// submitInput hands the typed line to the dispatcher and clears the box.
func (m Model) submitInput() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.commandInput.Value())
	if raw == "" {
		return m, nil
	}
	m.History.Add(raw)
	m.commandInput.Reset()
	m.LastInput = raw
	if m.submitter == nil {
		m.Output = "no command runner configured"
		m.OutputError = true
		return m, nil
	}
	m.Busy = true
	return m, tea.Batch(m.runCommand(raw), m.busySpinner.Tick)
}

func (m Model) runCommand(raw string) tea.Cmd {
	submitter, source, timeout := m.submitter, m.source, m.cfg.CommandTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := submitter.Submit(ctx, raw)
		msg := CommandResultMsg{Input: raw, Result: res, Err: err}
		if source != nil {
			msg.Snapshot = source.Snapshot()
		}
		return msg
	}
}

func (m Model) recallPrev() Model {
	if v, ok := m.History.Prev(m.commandInput.Value()); ok {
		m.commandInput.SetValue(v)
		m.commandInput.CursorEnd()
	}
	return m
}

func (m Model) recallNext() Model {
	if v, ok := m.History.Next(); ok {
		m.commandInput.SetValue(v)
		m.commandInput.CursorEnd()
	}
	return m
}
