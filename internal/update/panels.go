package update

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/scheduleplanner/internal/model"
	"github.com/sandeepkv93/scheduleplanner/internal/planner"
	"github.com/sandeepkv93/scheduleplanner/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "> "
	m.commandInput.Placeholder = "add n/NAME d/DDMMYY p/PRIORITY v/VENUE"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 2*m.cfg.PaneWidth - 4
	m.commandInput.Focus()

	m.taskTable = table.New(
		table.WithColumns(taskColumns(m.cfg.PaneWidth)),
		table.WithRows([]table.Row{}),
		table.WithHeight(m.cfg.TableHeight),
	)

	m.weekProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(m.cfg.PaneWidth-4))

	m.busySpinner = spinner.New()
	m.busySpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.helpViewport = viewport.New(m.cfg.PaneWidth, m.cfg.TableHeight+6)
	m.helpViewport.SetContent(views.RenderMarkdown(views.HelpMarkdown, m.cfg.GlamourStyle, m.cfg.PaneWidth))
}

// taskColumns splits the pane between the fixed-width fields and the name.
func taskColumns(paneWidth int) []table.Column {
	name := paneWidth - 4 - 7 - 9 - 12 - 10
	if name < 10 {
		name = 10
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: name},
		{Title: "Date", Width: 7},
		{Title: "Priority", Width: 9},
		{Title: "Venue", Width: 12},
		{Title: "Tags", Width: 10},
	}
}

func taskRows(tasks []model.Task) []table.Row {
	rows := make([]table.Row, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			t.Name,
			t.Date,
			t.Priority,
			t.Venue,
			strings.Join(t.Tags, ","),
		})
	}
	return rows
}

func (m *Model) applySnapshot(s planner.Snapshot) {
	m.Snapshot = s
	m.Title = s.Title
	m.taskTable.SetRows(taskRows(s.Tasks))
	if n := len(s.Tasks); n > 0 && m.taskTable.Cursor() >= n {
		m.taskTable.SetCursor(n - 1)
	}
}

func (m Model) renderTaskPanel() string {
	name := m.Snapshot.ViewName
	if name == "" {
		name = "all"
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		ViewName:  name,
		TableView: m.taskTable.View(),
		Visible:   len(m.Snapshot.Tasks),
		Total:     m.Snapshot.Total,
	})
}

func (m Model) renderResultPanel() string {
	return views.RenderResultPanel(views.ResultPanelData{
		LastInput:   m.LastInput,
		Body:        m.Output,
		IsError:     m.OutputError,
		Busy:        m.Busy,
		SpinnerView: m.busySpinner.View(),
	})
}

func (m Model) renderSemesterPanel() string {
	sem := m.Snapshot.Semester
	data := views.SemesterPanelData{Weeks: model.WeeksInSemester}
	if len(sem) > 0 {
		data.FirstDay = sem[0].StartDate
		data.LastDay = sem[len(sem)-1].EndDate
	}
	if m.Snapshot.WeekIndex >= 0 && m.Snapshot.WeekLabel != "" {
		data.WeekLabel = m.Snapshot.WeekLabel
		data.WeekNumber = m.Snapshot.WeekIndex + 1
		data.ProgressView = m.weekProgress.ViewAs(weekFraction(m.Snapshot.WeekIndex))
	}
	return views.RenderSemesterPanel(data)
}

func (m Model) renderHelpPanel() string {
	return views.RenderHelpPanel(views.HelpPanelData{
		Body:    m.helpViewport.View(),
		KeyHelp: m.helpModel.FullHelpView(m.Keys.FullHelp()),
	})
}
