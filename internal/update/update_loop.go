package update

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/scheduleplanner/internal/planner"
	"github.com/sandeepkv93/scheduleplanner/internal/views"
)

func (m Model) Init() tea.Cmd {
	if len(m.startup) == 0 {
		return nil
	}
	err := errors.Join(m.startup...)
	return func() tea.Msg { return AppErrorMsg{Err: err} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.Busy {
			var cmd tea.Cmd
			m.busySpinner, cmd = m.busySpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case CommandResultMsg:
		m.Busy = false
		if m.source != nil {
			m.applySnapshot(typed.Snapshot)
		}
		if typed.Err != nil {
			m.LastError = typed.Err
			m.Output = planner.UserMessage(typed.Err)
			m.OutputError = true
			return m.setStatus(fmt.Sprintf("%s failed", commandWord(typed.Input)), true)
		}
		m.Output = typed.Result.Message
		m.OutputError = false
		if typed.Result.Help {
			m.HelpVisible = true
		}
		if typed.Result.Exit {
			m.Quitting = true
			return m, tea.Quit
		}
		return m.setStatus(fmt.Sprintf("%s done", commandWord(typed.Input)), false)
	case ClearStatusMsg:
		if typed.Seq == m.statusSeq {
			m.Status = StatusBar{}
		}
		return m, nil
	case AppErrorMsg:
		if typed.Err == nil {
			return m, nil
		}
		m.LastError = typed.Err
		m.Output = planner.UserMessage(typed.Err)
		m.OutputError = true
		// Kept until the next command; pending expiries no longer match.
		m.statusSeq++
		m.Status = StatusBar{Text: "saved data could not be loaded", IsError: true}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.ToggleHelp):
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.HelpVisible && key.Matches(msg, m.Keys.CloseHelp):
		m.HelpVisible = false
		return m, nil
	case key.Matches(msg, m.Keys.RowUp, m.Keys.RowDown):
		if m.HelpVisible {
			var cmd tea.Cmd
			m.helpViewport, cmd = m.helpViewport.Update(msg)
			return m, cmd
		}
		// The input box owns the keyboard, so the table is moved directly.
		step := max(m.cfg.TableHeight/2, 1)
		if key.Matches(msg, m.Keys.RowUp) {
			m.taskTable.MoveUp(step)
		} else {
			m.taskTable.MoveDown(step)
		}
		return m, nil
	case key.Matches(msg, m.Keys.HistoryPrev):
		return m.recallPrev(), nil
	case key.Matches(msg, m.Keys.HistoryNext):
		return m.recallNext(), nil
	case key.Matches(msg, m.Keys.Submit):
		if m.Busy {
			return m, nil
		}
		return m.submitInput()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	right := m.renderResultPanel() + "\n" + m.renderSemesterPanel()
	if m.HelpVisible {
		right = m.renderHelpPanel()
	}
	status := ""
	if m.Status.Text != "" {
		status = "status: " + m.Status.Text
	}
	return views.RenderApp(views.AppData{
		Header:        m.Title,
		LeftPane:      m.renderTaskPanel(),
		RightPane:     right,
		InputLine:     m.commandInput.View(),
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Footer:        m.helpModel.ShortHelpView(m.Keys.ShortHelp()),
		PaneWidth:     m.cfg.PaneWidth,
	})
}

// setStatus shows text on the status line and schedules its expiry.
func (m Model) setStatus(text string, isError bool) (Model, tea.Cmd) {
	m.statusSeq++
	m.Status = StatusBar{Text: text, IsError: isError}
	seq := m.statusSeq
	return m, tea.Tick(m.cfg.StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
